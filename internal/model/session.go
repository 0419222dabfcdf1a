package model

import "time"

type Session struct {
	ID          string
	Role        Role
	UserID      string
	AccessToken string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Authenticated is false without a token or once the backend token has expired.
func (s Session) Authenticated(now time.Time) bool {
	if s.AccessToken == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

type LoginInput struct {
	Role     string `json:"role"`
	ID       string `json:"id"`
	Password string `json:"password"`
}

// CustomerInput is the sign-up form. Only customers sign up here.
type CustomerInput struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ObjectType  string `json:"object_type"`
}
