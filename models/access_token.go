package models

import (
	"strings"
	"time"
)

const TokenTypeBearer = "Bearer"

type AccessTokenModel struct {
	TokenType   string
	AccessToken string
	Expires     time.Time
	UserId      string
}

// Valid reports whether every field is set. The zero time stands for an unset expiry.
func (t AccessTokenModel) Valid() bool {
	return strings.TrimSpace(t.TokenType) != "" &&
		strings.TrimSpace(t.AccessToken) != "" &&
		strings.TrimSpace(t.UserId) != "" &&
		!t.Expires.IsZero()
}
