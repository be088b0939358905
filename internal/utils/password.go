package utils

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var (
	hasLetter  = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidatePassword enforces the registration password policy: at least
// 8 characters with a letter, a digit and a special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if !hasLetter.MatchString(password) {
		return errors.New("password must contain a letter")
	}
	if !hasDigit.MatchString(password) {
		return errors.New("password must contain a digit")
	}
	if !hasSpecial.MatchString(password) {
		return errors.New("password must contain a special character")
	}
	return nil
}
