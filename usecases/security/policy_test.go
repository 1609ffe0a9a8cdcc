package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/police-department/evidence-manager/models"
)

func TestAuthorize(t *testing.T) {
	officer := models.Credentials{Type: models.OfficerTypePoliceOfficer}
	admin := models.Credentials{Type: models.OfficerTypeAdministrator}

	tts := []struct {
		name   string
		creds  models.Credentials
		found  bool
		policy Policy
		want   AuthorizationResult
	}{
		{"no credentials", models.Credentials{}, false, PolicyIsPoliceOfficer, Unauthenticated},
		{"officer on officer route", officer, true, PolicyIsPoliceOfficer, Allowed},
		{"admin on officer route", admin, true, PolicyIsPoliceOfficer, Denied},
		{"admin on admin route", admin, true, PolicyIsAdministrator, Allowed},
		{"officer on admin route", officer, true, PolicyIsAdministrator, Denied},
		{"unknown type", models.Credentials{Type: "visitor"}, true, PolicyIsPoliceOfficer, Denied},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.creds, tt.found, tt.policy))
		})
	}
}
