package ports

import "context"

// RegisterInput carries a registration request. DOB is the raw date string as
// submitted; the service parses it before persisting.
type RegisterInput struct {
	Username     string
	Password     string
	Email        string
	Role         string
	MobileNumber string
	Address      string
	DOB          string
	Gender       string
}

// UserProjection is the minimal identity view returned by Login. The password
// hash never leaves the service layer.
type UserProjection struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TokenClaims is the decoded identity carried by a verified token.
type TokenClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// TokenVerifier validates a bearer token without any store lookup.
type TokenVerifier interface {
	VerifyToken(token string) (*TokenClaims, error)
}

// AuthService defines the credential issuance and verification use cases.
type AuthService interface {
	TokenVerifier
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, username, password string) (string, *UserProjection, error)
}
