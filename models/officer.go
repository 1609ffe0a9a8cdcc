package models

import (
	"time"

	"github.com/google/uuid"
)

type OfficerType string

const (
	OfficerTypeAdministrator OfficerType = "administrator"
	OfficerTypePoliceOfficer OfficerType = "police_officer"
)

func (t OfficerType) String() string {
	return string(t)
}

func OfficerTypeFrom(s string) OfficerType {
	switch s {
	case string(OfficerTypeAdministrator):
		return OfficerTypeAdministrator
	case string(OfficerTypePoliceOfficer):
		return OfficerTypePoliceOfficer
	}
	return ""
}

type Officer struct {
	Id           uuid.UUID
	UserName     string
	Email        string
	PasswordHash string
	Type         OfficerType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateOfficerInput struct {
	UserName string `json:"user_name" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Type     string `json:"type" validate:"required,oneof=administrator police_officer"`
}

type CreateOfficerAttributes struct {
	Id           uuid.UUID
	UserName     string
	Email        string
	PasswordHash string
	Type         OfficerType
	CreatedAt    time.Time
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SeedOfficer struct {
	UserName string `yaml:"user_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Type     string `yaml:"type"`
}

type SeedConfiguration struct {
	CreateAdminEmail    string
	CreateAdminPassword string
	SeedOfficersFile    string
}
