package entity

import (
	"time"
)

const RoleUser = "ROLE_USER"

type User struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Email     string   `gorm:"uniqueIndex;not null" json:"email"`
	Password  string   `json:"-"` // bcrypt hash, never serialized
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Allergy   string   `json:"allergy"`
	ApiToken  string   `gorm:"uniqueIndex;not null" json:"apiToken"`
	Roles     []string `gorm:"serializer:json" json:"roles"`

	// Stamped by the service layer, not by gorm: UpdatedAt stays null
	// until the first edit.
	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// RoleList always contains ROLE_USER, whatever is stored.
func (u *User) RoleList() []string {
	for _, r := range u.Roles {
		if r == RoleUser {
			return u.Roles
		}
	}
	return append(append([]string{}, u.Roles...), RoleUser)
}
