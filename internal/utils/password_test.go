package utils

import (
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"Ab1!", true},        // too short
		{"abcdefgh", true},    // letters only
		{"abcdefg1", true},    // no special character
		{"12345678!", true},   // no letter
		{"Abcdefg1!", false},
		{"pass word 9?", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abcdefg1!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "Abcdefg1!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("Abcdefg1!", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
