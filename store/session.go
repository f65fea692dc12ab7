package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/junaidrashid-git/storefront-api/models"
)

// SessionStore owns the current identity. The persisted form is a signed
// HS256 token so a tampered cookie simply fails verification and the session
// falls back to anonymous; the store performs no credential check of its own.
type SessionStore struct {
	kv     KV
	secret []byte
}

func NewSessionStore(kv KV, secret []byte) *SessionStore {
	return &SessionStore{kv: kv, secret: secret}
}

// Login stores user as the current session. The caller is responsible for
// having derived the role (models.DeriveRole).
func (s *SessionStore) Login(user models.User) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(UserTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return
	}
	s.kv.Set(KeyUser, token, UserTTL)
}

// Logout clears the session and removes its storage entry.
func (s *SessionStore) Logout() {
	s.kv.Delete(KeyUser)
}

// Current returns the stored identity, or false when the session is absent,
// expired or fails verification.
func (s *SessionStore) Current() (models.User, bool) {
	raw, ok := s.kv.Get(KeyUser)
	if !ok {
		return models.User{}, false
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, false
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" {
		return models.User{}, false
	}
	return models.User{Username: username, Role: role}, true
}
