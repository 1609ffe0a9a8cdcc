package models

// BaseResponse is the outcome of a usecase call. Expected business conditions
// (not found, forbidden, invalid input) are reported through Message, never as an error.
type BaseResponse struct {
	Success     bool
	Message     ResponseMessage
	FieldErrors FieldValidationError
}

type ResponseWithValue[T any] struct {
	BaseResponse
	Value T
}

func NewSuccessResponse() BaseResponse {
	return BaseResponse{Success: true, Message: Success}
}

func NewFailureResponse(message ResponseMessage) BaseResponse {
	return BaseResponse{Success: false, Message: message}
}

func NewValidationFailureResponse(message ResponseMessage, fieldErrors FieldValidationError) BaseResponse {
	return BaseResponse{Success: false, Message: message, FieldErrors: fieldErrors}
}

func (r BaseResponse) Is(message ResponseMessage) bool {
	return r.Message == message
}

func NewSuccessResponseWithValue[T any](value T) ResponseWithValue[T] {
	return ResponseWithValue[T]{BaseResponse: NewSuccessResponse(), Value: value}
}

func NewFailureResponseWithValue[T any](message ResponseMessage) ResponseWithValue[T] {
	return ResponseWithValue[T]{BaseResponse: NewFailureResponse(message)}
}

func NewValidationFailureResponseWithValue[T any](message ResponseMessage, fieldErrors FieldValidationError) ResponseWithValue[T] {
	return ResponseWithValue[T]{BaseResponse: NewValidationFailureResponse(message, fieldErrors)}
}
