package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, GenericError, ResponseMessage(0))
	assert.Equal(t, InvalidEvidence, ResponseMessage(8))
	assert.Equal(t, TooManyRequests, ResponseMessage(9))

	assert.Equal(t, "CaseDontExists", CaseDontExists.String())
	assert.Equal(t, "Case does't exists", CaseDontExists.Description())
	assert.Equal(t, "Action is not permited", Forbidden.Description())
	assert.Equal(t, "TooManyRequests", TooManyRequests.String())
	assert.Equal(t, "An error ocurred, try again later", GenericError.Description())
	assert.Equal(t, "An error ocurred, try again later", ResponseMessage(42).Description())
}

func TestResponses(t *testing.T) {
	ok := NewSuccessResponseWithValue(Case{Name: "Burglary"})
	assert.True(t, ok.Success)
	assert.True(t, ok.Is(Success))
	assert.Equal(t, "Burglary", ok.Value.Name)

	ko := NewFailureResponseWithValue[Case](CaseDontExists)
	assert.False(t, ko.Success)
	assert.True(t, ko.Is(CaseDontExists))
	assert.Equal(t, Case{}, ko.Value)

	invalid := NewValidationFailureResponse(InvalidCase, FieldValidationError{"name": "is required"})
	assert.False(t, invalid.Success)
	assert.Equal(t, "is required", invalid.FieldErrors["name"])
}
