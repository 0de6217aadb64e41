package models

import (
	"time"

	"user-service/core/validation"

	"gorm.io/gorm"
)

// User is a registered user. Name and email are unique across all users; the
// unique indexes, not application code, enforce that.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(191);not null;uniqueIndex:idx_users_name" json:"name" validate:"required" message:"User name is required"`
	Email     string    `gorm:"type:varchar(191);not null;uniqueIndex:idx_users_email" json:"email" validate:"required" message:"Email is required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name used by GORM.
func (User) TableName() string {
	return "users"
}

// Validate checks the schema constraints of the user.
func (u *User) Validate() error {
	return validation.Struct("User", u)
}

// BeforeSave rejects invalid users before any write reaches the database.
func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUser builds the entity described by the request.
func (r CreateUserRequest) ToUser() *User {
	return &User{Name: r.Name, Email: r.Email}
}

// UpdateUserRequest is the payload for updating a user. Absent fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Apply copies the fields present in the request onto u.
func (r UpdateUserRequest) Apply(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
}
