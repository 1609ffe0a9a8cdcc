package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenModel_Valid(t *testing.T) {
	valid := AccessTokenModel{
		TokenType:   TokenTypeBearer,
		AccessToken: "token",
		Expires:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UserId:      "a1b2",
	}

	tests := []struct {
		name  string
		token func() AccessTokenModel
		want  bool
	}{
		{"nominal", func() AccessTokenModel { return valid }, true},
		{"blank token type", func() AccessTokenModel { t := valid; t.TokenType = "  "; return t }, false},
		{"empty access token", func() AccessTokenModel { t := valid; t.AccessToken = ""; return t }, false},
		{"empty user id", func() AccessTokenModel { t := valid; t.UserId = ""; return t }, false},
		{"unset expiry", func() AccessTokenModel { t := valid; t.Expires = time.Time{}; return t }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token().Valid())
		})
	}
}
