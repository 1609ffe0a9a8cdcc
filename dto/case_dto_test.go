package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/police-department/evidence-manager/models"
)

func TestAdaptUpdateCaseInput(t *testing.T) {
	t.Run("only provided fields are patched", func(t *testing.T) {
		var body UpdateCaseBody
		require.NoError(t, json.Unmarshal([]byte(`{"name": "Updated"}`), &body))

		input := AdaptUpdateCaseInput(body)
		require.NotNil(t, input.Name)
		assert.Equal(t, "Updated", *input.Name)
		assert.Nil(t, input.Description)
	})

	t.Run("null means unchanged", func(t *testing.T) {
		var body UpdateCaseBody
		require.NoError(t, json.Unmarshal([]byte(`{"name": null, "description": ""}`), &body))

		input := AdaptUpdateCaseInput(body)
		assert.Nil(t, input.Name)
		require.NotNil(t, input.Description)
		assert.Equal(t, "", *input.Description)
	})

	t.Run("identity fields in the body are ignored", func(t *testing.T) {
		var body UpdateCaseBody
		raw := `{"id": "8d6b8a47-8f55-4c83-9b3b-1d1f7b4b2a10", "officer_id": "x", "created_at": "2020-01-01T00:00:00Z"}`
		require.NoError(t, json.Unmarshal([]byte(raw), &body))

		assert.Equal(t, models.UpdateCaseInput{}, AdaptUpdateCaseInput(body))
	})
}

func TestAdaptCreateCaseInput(t *testing.T) {
	officerId := uuid.New()
	var body CreateCaseBody
	raw := `{"id": "8d6b8a47-8f55-4c83-9b3b-1d1f7b4b2a10", "name": "Burglary 2024-01", "description": "Break-in on Main St", "officer_id": "someone-else"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &body))

	input := AdaptCreateCaseInput(body, officerId)
	assert.Equal(t, models.CreateCaseInput{
		Name:        "Burglary 2024-01",
		Description: "Break-in on Main St",
		OfficerId:   officerId,
	}, input)
}

func TestAdaptResponseWithValue(t *testing.T) {
	c := models.Case{Id: uuid.New(), Name: "Burglary"}

	ok := AdaptResponseWithValue(models.NewSuccessResponseWithValue(c), AdaptCaseDto)
	assert.True(t, ok.Success)
	assert.Equal(t, "Success", ok.Message)
	assert.Equal(t, AdaptCaseDto(c), ok.Value)

	ko := AdaptResponseWithValue(models.NewFailureResponseWithValue[models.Case](models.CaseDontExists), AdaptCaseDto)
	assert.False(t, ko.Success)
	assert.Equal(t, "CaseDontExists", ko.Message)
	assert.Equal(t, "Case does't exists", ko.Description)
	assert.Nil(t, ko.Value)

	out, err := json.Marshal(ko)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "message": "CaseDontExists", "description": "Case does't exists"}`, string(out))
}
