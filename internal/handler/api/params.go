package api

import (
	"net/http"

	"lounge-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+what+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
