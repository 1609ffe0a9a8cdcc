package models

import "github.com/google/uuid"

type Credentials struct {
	OfficerId uuid.UUID
	Email     string
	UserName  string
	Type      OfficerType
}

func (o Officer) IntoCredentials() Credentials {
	return Credentials{
		OfficerId: o.Id,
		Email:     o.Email,
		UserName:  o.UserName,
		Type:      o.Type,
	}
}
