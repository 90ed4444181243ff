package dto

// RegisterRequest creates the back-office admin account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates an admin.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token the dashboard client stores.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
