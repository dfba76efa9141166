package authsvc

import (
	"context"
	"errors"

	"github.com/KIKE335/tool-management-backend/util/hash"
	jwtutil "github.com/KIKE335/tool-management-backend/util/jwt"
)

var ErrInvalidCreds = errors.New("invalid credentials")

// Service authenticates the single env-configured admin; there is no
// user table in this system.
type Service interface {
	Login(ctx context.Context, password string) (string, error)
}

type service struct {
	passwordHash string
	secret       string
}

func New(passwordHash, secret string) Service {
	return &service{passwordHash: passwordHash, secret: secret}
}

func (s *service) Login(_ context.Context, password string) (string, error) {
	if !hash.Check(s.passwordHash, password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, "admin", "admin", 24)
}
