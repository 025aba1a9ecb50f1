package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Operator credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ops@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"correct-horse"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description New operator account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ops@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"correct-horse"`
	Name     string `json:"name,omitempty" binding:"max=100" example:"Freight Desk"`
} // @name RegisterRequest

// RefreshRequest carries the refresh token issued at login.
//
// @Description Refresh token exchange
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
} // @name RefreshRequest

// TokenPair is an access and refresh token pair.
//
// @Description JWT access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name TokenPair

// AuthResponse is returned by login, register and refresh.
//
// @Description Tokens and the authenticated operator
type AuthResponse struct {
	TokenPair
	User UserResponse `json:"user"`
} // @name AuthResponse

// UserResponse represents user information in API responses.
type UserResponse struct {
	Email string `json:"email" example:"ops@example.com"`
	Name  string `json:"name,omitempty" example:"Freight Desk"`
	Role  string `json:"role" example:"operator"`
} // @name UserResponse

// Claims are the application claims carried by both token kinds.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name,omitempty"`
	Role   string             `json:"role"`
}
