package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargotrack/cargo-api/internal/api/metrics"
	"github.com/cargotrack/cargo-api/internal/core/domain"
	"github.com/cargotrack/cargo-api/internal/core/ports"
)

// bcryptCost matches the 10 rounds the user collection was populated with.
const bcryptCost = 10

// maxPasswordBytes is bcrypt's input limit; anything longer makes
// GenerateFromPassword fail.
const maxPasswordBytes = 72

// AuthService implements registration, login and stateless token verification.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new account. The uniqueness pre-check covers username
// and email in a single query; the unique indexes on the collection are the
// atomic arbiter when two registrations race past the check, and both paths
// map to domain.ErrUserExists. Field constraints are enforced by the store
// schema layer inside repo.Create, not here.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUserExists
	}

	if in.Password == "" {
		return &domain.ValidationError{Reason: "password is required"}
	}
	if len(in.Password) < 6 {
		return &domain.ValidationError{Reason: "password must be at least 6 characters"}
	}
	if len(in.Password) > maxPasswordBytes {
		return &domain.ValidationError{Reason: "password must be at most 72 bytes"}
	}

	dob, err := parseDOB(in.DOB)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Role:         in.Role,
		MobileNumber: in.MobileNumber,
		Address:      in.Address,
		DOB:          dob,
		Gender:       in.Gender,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("username", in.Username).Msg("user registered")
	return nil
}

// Login verifies credentials and issues a signed token. An unknown username
// and a wrong password both return domain.ErrInvalidCredentials so the
// response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *ports.UserProjection, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("login successful")
	return token, &ports.UserProjection{ID: user.ID, Username: user.Username}, nil
}

// VerifyToken validates the signature and expiry of a token and returns its
// identity claims. It is pure and stateless: no store lookup, no revocation
// list — a token stays valid until its expiry passes.
func (s *AuthService) VerifyToken(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: id, Username: username}, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseDOB accepts a plain date or an RFC 3339 timestamp.
func parseDOB(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, &domain.ValidationError{Reason: "dob is required"}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, &domain.ValidationError{Reason: "dob must be a valid date"}
}
