package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,max=50"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6"`

	// Role, Admin or User
	// required: true
	// example: User
	Role string `json:"role" validate:"required"`
}

// MessageResponse carries a human-readable message. Every error body uses it.
// swagger:model MessageResponse
type MessageResponse struct {
	// example: User created successfully.
	Message string `json:"message"`
}
