package dto

// RegisterRequest entrada de POST /api/auth/register.
// partner_id asocia al usuario con su proveedor (seller) o cliente (buyer);
// obligatorio para esos roles, vacío para admin.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	PartnerID string `json:"partner_id,omitempty"`
}

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse token emitido tras registro o login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	PartnerID string `json:"partner_id,omitempty"`
}
