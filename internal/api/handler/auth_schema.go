package handler

import "github.com/cargotrack/cargo-api/internal/core/ports"

// errorResponse documents the standard error envelope on 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	MobileNumber string `json:"mobileNumber"`
	Address      string `json:"address"`
	DOB          string `json:"dob"`
	Gender       string `json:"gender"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string                `json:"message"`
	Token   string                `json:"token"`
	User    *ports.UserProjection `json:"user"`
}

type protectedResponse struct {
	Message string            `json:"message"`
	User    *ports.TokenClaims `json:"user"`
}
