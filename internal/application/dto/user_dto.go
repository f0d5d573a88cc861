package dto

// CreateUserRequest alta de usuario desde administración (password en texto, se hashea en el use case).
// Role y Status vacíos toman Staff y Active.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin Manager Staff"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateUserRequest actualización parcial. Password nil conserva el actual.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitnil,min=3"`
	Email    *string `json:"email,omitempty" validate:"omitnil,email"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=6"`
	Role     *string `json:"role,omitempty" validate:"omitnil,oneof=Admin Manager Staff"`
	Status   *string `json:"status,omitempty" validate:"omitnil,oneof=Active Inactive"`
}

// RegisterRequest auto-registro (siempre rol Staff).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
