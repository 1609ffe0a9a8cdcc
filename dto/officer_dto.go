package dto

import (
	"time"

	"github.com/police-department/evidence-manager/models"
)

type APIOfficer struct {
	Id        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptOfficerDto(o models.Officer) APIOfficer {
	return APIOfficer{
		Id:        o.Id.String(),
		UserName:  o.UserName,
		Email:     o.Email,
		Type:      o.Type.String(),
		CreatedAt: o.CreatedAt,
	}
}

type CreateOfficerBody struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

func AdaptCreateOfficerInput(body CreateOfficerBody) models.CreateOfficerInput {
	return models.CreateOfficerInput{
		UserName: body.UserName,
		Email:    body.Email,
		Password: body.Password,
		Type:     body.Type,
	}
}
