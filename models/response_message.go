package models

type ResponseMessage int

const (
	GenericError ResponseMessage = iota
	Success
	CaseDontExists
	InvalidCase
	InvalidCredentials
	Forbidden
	EvidenceDontExists
	UserIsNotAuthenticated
	InvalidEvidence
	TooManyRequests
)

func (m ResponseMessage) String() string {
	switch m {
	case GenericError:
		return "GenericError"
	case Success:
		return "Success"
	case CaseDontExists:
		return "CaseDontExists"
	case InvalidCase:
		return "InvalidCase"
	case InvalidCredentials:
		return "InvalidCredentials"
	case Forbidden:
		return "Forbidden"
	case EvidenceDontExists:
		return "EvidenceDontExists"
	case UserIsNotAuthenticated:
		return "UserIsNotAuthenticated"
	case InvalidEvidence:
		return "InvalidEvidence"
	case TooManyRequests:
		return "TooManyRequests"
	default:
		return "GenericError"
	}
}

// Description is the text shown to end users.
func (m ResponseMessage) Description() string {
	switch m {
	case Success:
		return "Success"
	case CaseDontExists:
		return "Case does't exists"
	case InvalidCase:
		return "Invalid case"
	case InvalidCredentials:
		return "Invalid credentials"
	case Forbidden:
		return "Action is not permited"
	case EvidenceDontExists:
		return "Evidence does't exists"
	case UserIsNotAuthenticated:
		return "User is not authenticated"
	case InvalidEvidence:
		return "Invalid evidence"
	case TooManyRequests:
		return "Too many requests, try again later"
	default:
		return "An error ocurred, try again later"
	}
}
