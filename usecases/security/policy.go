package security

import (
	"github.com/police-department/evidence-manager/models"
)

type Policy int

const (
	PolicyIsPoliceOfficer Policy = iota
	PolicyIsAdministrator
)

func (p Policy) String() string {
	switch p {
	case PolicyIsPoliceOfficer:
		return "IsPoliceOfficer"
	case PolicyIsAdministrator:
		return "IsAdministrator"
	}
	return "Unknown"
}

type AuthorizationResult int

const (
	Allowed AuthorizationResult = iota
	Denied
	Unauthenticated
)

// Authorize decides whether the requester satisfies the route policy.
// found is false when the request carries no valid credentials.
func Authorize(creds models.Credentials, found bool, policy Policy) AuthorizationResult {
	if !found {
		return Unauthenticated
	}

	switch policy {
	case PolicyIsPoliceOfficer:
		if creds.Type == models.OfficerTypePoliceOfficer {
			return Allowed
		}
	case PolicyIsAdministrator:
		if creds.Type == models.OfficerTypeAdministrator {
			return Allowed
		}
	}
	return Denied
}
