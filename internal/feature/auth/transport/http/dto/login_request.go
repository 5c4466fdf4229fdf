package dto

// LoginReq represents the request body for the /login endpoint.
// It includes required-field and email-format validation.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
