package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/service"
)

// GetSchools browse private schools, paginated.
// @Tags SCHOOL
// @Summary browse private schools, paginated.
// @Schemes
// @Description one load-more page of schools. Pass the returned nextCursor to
// @Description resume; an empty nextCursor means the listing is exhausted.
// @Param Authorization header string true "Bearer token"
// @Param state query string false "two-letter state code"
// @Param limit query int false "page size" default(50)
// @Param cursor query string false "opaque cursor from the previous page"
// @Produce json
// @Success 200 {object} dto.SchoolPageDto
// @Router /schools [get]
func GetSchools(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "get-schools-controller")
	defer span.End()

	var query dto.SchoolListQuery

	if err := c.ShouldBindWith(&query, binding.Query); err != nil {
		schoolLogger.Error("Error on school query validation", slog.String("error", err.Error()))
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
			"error": "failed to validate query parameters",
		})
		return
	}

	page, err := schoolService.Page(ctx, query)

	if err != nil {
		if errors.Is(err, service.ErrBadCursor) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		schoolLogger.Error("GetSchools", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Error while retrieving schools",
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetSchoolByID get school by ID.
// @Tags SCHOOL
// @Summary get school by ID.
// @Schemes
// @Description get school by ID.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "School ID"
// @Produce json
// @Success 200 {object} dto.SchoolDto
// @Router /schools/{id} [get]
func GetSchoolByID(c *gin.Context) {
	schoolId, _ := c.Params.Get("id")

	school, err := schoolService.GetById(c.Request.Context(), schoolId)

	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		schoolLogger.Error("Error getting school by ID", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error getting school"})
		return
	}

	c.JSON(http.StatusOK, school)
}

// UpdateSchool edit a school's choir teacher fields.
// @Tags SCHOOL
// @Summary edit a school's choir teacher fields.
// @Schemes
// @Description the imported school fields are read only; only the choir
// @Description teacher contact details can change.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "School ID"
// @Param request body dto.PatchSchool true "patch school dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.SchoolDto
// @Router /schools/{id} [patch]
func UpdateSchool(c *gin.Context) {
	schoolId, _ := c.Params.Get("id")

	var patch dto.PatchSchool

	if err := c.ShouldBindJSON(&patch); err != nil {
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

	school, err := schoolService.UpdateChoirTeacher(c.Request.Context(), schoolId, patch)

	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		schoolLogger.Error("Error updating school", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error updating school"})
		return
	}

	c.JSON(http.StatusOK, school)
}
