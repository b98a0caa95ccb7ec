package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/service"
)

// GetDistricts search a state's districts.
// @Tags DISTRICT
// @Summary search a state's districts.
// @Schemes
// @Description lists the state's reference districts, optionally filtered by
// @Description a case-insensitive substring of the district name.
// @Param Authorization header string true "Bearer token"
// @Param state path string true "State name"
// @Param q query string false "district name substring"
// @Produce json
// @Success 200 {array} dto.DistrictDto
// @Router /districts/{state} [get]
func GetDistricts(c *gin.Context) {
	state, _ := c.Params.Get("state")
	query := c.Query("q")

	districts, err := districtService.Search(c.Request.Context(), state, query)

	if err != nil {
		districtLogger.Error("GetDistricts", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Error while retrieving districts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": districts,
		"count":   len(districts),
	})
}

// GetDistrict get district by state and link.
// @Tags DISTRICT
// @Summary get district by state and link.
// @Schemes
// @Description get district by state and link.
// @Param Authorization header string true "Bearer token"
// @Param state path string true "State name"
// @Param link path string true "District link"
// @Produce json
// @Success 200 {object} dto.DistrictDto
// @Router /districts/{state}/{link} [get]
func GetDistrict(c *gin.Context) {
	state, _ := c.Params.Get("state")
	link, _ := c.Params.Get("link")

	district, err := districtService.Get(c.Request.Context(), state, link)

	if err != nil {
		if errors.Is(err, service.ErrDistrictNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		districtLogger.Error("GetDistrict", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error getting district"})
		return
	}

	c.JSON(http.StatusOK, district)
}

// SetDistrictCompleted mark or unmark a district as reached out.
// @Tags DISTRICT
// @Summary mark or unmark a district as reached out.
// @Schemes
// @Description marking stamps the completion time, unmarking clears it.
// @Param Authorization header string true "Bearer token"
// @Param state path string true "State name"
// @Param link path string true "District link"
// @Param request body dto.SetCompletedInput true "completed flag"
// @Accept json
// @Produce json
// @Success 200 {object} dto.DistrictDto
// @Router /districts/{state}/{link}/completed [patch]
func SetDistrictCompleted(c *gin.Context) {
	state, _ := c.Params.Get("state")
	link, _ := c.Params.Get("link")

	var input dto.SetCompletedInput

	if err := c.ShouldBindJSON(&input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := make([]ErrMsg, len(ve))

			for i, fe := range ve {
				out[i] = ErrMsg{
					Message: getErrorMsg(fe),
					Field:   fe.Field(),
				}
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": out,
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to validate input.",
		})
		return
	}

	district, err := districtService.SetCompleted(c.Request.Context(), state, link, *input.Completed)

	if err != nil {
		if errors.Is(err, service.ErrDistrictNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		districtLogger.Error("SetDistrictCompleted", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error updating district"})
		return
	}

	c.JSON(http.StatusOK, district)
}
