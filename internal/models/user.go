package models

import (
	"time"
)

// Privilege levels. Level is set at registration and never changes
// through the API; promoting an account is a manual operation.
const (
	LevelMember = 1
	LevelAdmin  = 999
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Password       string    `gorm:"not null" json:"-"` // Hash
	PoliticalParty string    `json:"political_party"`
	RealName       string    `json:"real_name"`
	Affiliation    string    `json:"affiliation"`
	Level          int       `gorm:"default:1" json:"level"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Level >= LevelAdmin
}

// DisplayAffiliation falls back to the party name when no explicit
// affiliation is set.
func (u *User) DisplayAffiliation() string {
	if u.Affiliation != "" {
		return u.Affiliation
	}
	return u.PoliticalParty
}
