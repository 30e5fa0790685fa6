package dto

// RegisterRequest creates an account plus its role-specific profile.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Role      string `json:"role" validate:"required,oneof=admin coach apprenant entreprise"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// LoginRequest authenticates an account by email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the account payload embedded in auth responses.
type AuthUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginResponse carries the signed token and the authenticated account.
type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
