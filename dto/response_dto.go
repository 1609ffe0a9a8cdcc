package dto

import "github.com/police-department/evidence-manager/models"

// APIResponse is the envelope of every json response.
type APIResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Description string            `json:"description"`
	Value       any               `json:"value,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
}

func AdaptBaseResponse(response models.BaseResponse) APIResponse {
	return APIResponse{
		Success:     response.Success,
		Message:     response.Message.String(),
		Description: response.Message.Description(),
		Errors:      response.FieldErrors,
	}
}

// AdaptResponseWithValue only renders the value of a successful response.
func AdaptResponseWithValue[T, U any](response models.ResponseWithValue[T], adapter func(T) U) APIResponse {
	out := AdaptBaseResponse(response.BaseResponse)
	if response.Success {
		out.Value = adapter(response.Value)
	}
	return out
}
