package security

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/police-department/evidence-manager/models"
)

func TestEnforceSecurityCase(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	c := models.Case{Id: uuid.New(), OfficerId: owner}
	e := EnforceSecurityCaseImpl{}

	t.Run("owner can write", func(t *testing.T) {
		assert.NoError(t, e.UpdateCase(owner, c))
		assert.NoError(t, e.DeleteCase(owner, c))
		assert.NoError(t, e.DeleteEvidence(owner, c))
	})

	t.Run("other officer is forbidden", func(t *testing.T) {
		assert.ErrorIs(t, e.UpdateCase(other, c), models.ForbiddenError)
		assert.ErrorIs(t, e.DeleteCase(other, c), models.ForbiddenError)
		assert.ErrorIs(t, e.DeleteEvidence(other, c), models.ForbiddenError)
	})

	t.Run("forbidden error names the officer and carries a stack trace", func(t *testing.T) {
		err := e.UpdateCase(other, c)
		assert.EqualError(t, err, "officer "+other.String()+" can't update case "+c.Id.String()+": forbidden")
		assert.NotNil(t, errors.GetReportableStackTrace(err))
	})

	t.Run("nil officer is forbidden", func(t *testing.T) {
		assert.ErrorIs(t, e.UpdateCase(uuid.Nil, models.Case{}), models.ForbiddenError)
	})

	t.Run("list own cases only", func(t *testing.T) {
		assert.NoError(t, e.ListCases(owner, owner))
		assert.ErrorIs(t, e.ListCases(other, owner), models.ForbiddenError)
	})
}
