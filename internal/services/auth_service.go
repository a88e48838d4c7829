package services

import (
	"errors"

	"brushworks/internal/domain"
	"brushworks/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService signs the artist into the admin area. The storefront has a
// single seeded account; buyers never authenticate.
type AuthService struct {
	Users *repos.UserRepo
}

// Login verifies the password and binds the session id to the account.
// Lookup misses and bad passwords both come back as ErrBadCreds so the
// login page cannot be used to probe for the account email.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if u.Role != "ADMIN" {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

// CurrentUser resolves a session cookie to the signed-in artist, if any.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
