package dto

import (
	"time"

	"github.com/police-department/evidence-manager/models"
)

type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AdaptLoginInput(body LoginBody) models.LoginInput {
	return models.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	}
}

type APIAccessToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserId      string    `json:"user_id"`
}

func AdaptAccessTokenDto(token models.AccessTokenModel) APIAccessToken {
	return APIAccessToken{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.Expires,
		UserId:      token.UserId,
	}
}
