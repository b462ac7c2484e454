package auth

import "errors"

// LoginDTO is the request body for admin login.
type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

var errInvalidPassword = errors.New("invalid password")
