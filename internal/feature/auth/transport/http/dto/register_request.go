// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// Email format is checked by Gin's binding; the password policy lives in the
// usecase so its error message stays specific.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
