package entity

// Session es la identidad autenticada actual (sin password).
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin deriva el privilegio únicamente del rol.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// SessionFromUser construye la sesión a partir de un usuario.
func SessionFromUser(u *User) *Session {
	return &Session{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
