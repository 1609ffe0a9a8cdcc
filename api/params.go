package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/police-department/evidence-manager/utils"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseUuid(c.Param(name))
	if err != nil {
		_ = c.Error(err)
		return uuid.Nil, false
	}
	return id, true
}
