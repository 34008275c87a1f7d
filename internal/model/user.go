package model

import "time"

// Roles assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a person record with credentials and a role.
// Accounts are created out of band (see cmd/seed); there is no
// self-registration endpoint.
type User struct {
	ID        uint      `json:"id_user" gorm:"column:id_user;primaryKey"`
	Nom       string    `json:"nom" gorm:"size:70;not null"`
	Prenom    string    `json:"prenom" gorm:"size:70;not null"`
	Telephone string    `json:"telephone" gorm:"size:10;not null"`
	Mail      string    `json:"mail" gorm:"uniqueIndex;size:70;not null"`
	Password  string    `json:"-" gorm:"size:255"` // bcrypt hash, empty until initialized
	Role      string    `json:"role" gorm:"type:enum('user','admin');not null;default:'user'"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName keeps the source schema's table name.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
