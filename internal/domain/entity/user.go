package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleStaff   = "Staff"
)

// Estados de cuenta.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User representa un usuario del sistema. Password guarda el hash bcrypt, nunca el texto plano.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Role      string     `json:"role"`   // Admin, Manager, Staff
	Status    string     `json:"status"` // Active, Inactive
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// IsActive indica si la cuenta puede iniciar sesión.
func (u *User) IsActive() bool {
	return u.Status != StatusInactive
}
