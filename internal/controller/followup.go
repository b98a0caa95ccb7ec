package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFollowUps list contacts due for follow-up.
// @Tags FOLLOWUP
// @Summary list contacts due for follow-up.
// @Schemes
// @Description contacts never engaged, or last engaged more than three days
// @Description ago on every channel.
// @Param Authorization header string true "Bearer token"
// @Produce json
// @Success 200 {array} dto.FollowUpContact
// @Router /followup [get]
func GetFollowUps(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "follow-up-controller")
	defer span.End()

	due, err := followUpService.DueContacts(ctx)

	if err != nil {
		followUpLogger.Error("GetFollowUps", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Error while computing follow-ups",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": due,
		"count":   len(due),
	})
}
