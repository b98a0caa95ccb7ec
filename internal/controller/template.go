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

// GetTemplates list every outreach template.
// @Tags TEMPLATE
// @Summary list every outreach template.
// @Schemes
// @Description list every outreach template.
// @Param Authorization header string true "Bearer token"
// @Produce json
// @Success 200 {array} dto.TemplateDto
// @Router /templates [get]
func GetTemplates(c *gin.Context) {

	templates, err := templateService.List(c.Request.Context())

	if err != nil {
		templateLogger.Error("GetTemplates", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Error while retrieving templates",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": templates,
		"count":   len(templates),
	})
}

// CreateTemplate create template.
// @Tags TEMPLATE
// @Summary create template.
// @Schemes
// @Description body may carry {name}, {district} and {school} placeholders.
// @Param Authorization header string true "Bearer token"
// @Param request body dto.CreateTemplateDto true "create template dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.TemplateDto
// @Router /templates [post]
func CreateTemplate(c *gin.Context) {
	identity := c.MustGet("identity").(dto.Identity)

	var template dto.CreateTemplateDto

	if err := c.ShouldBindJSON(&template); err != nil {
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
		templateLogger.Error("error on validation", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create template",
		})
		return
	}

	created, err := templateService.Create(c.Request.Context(), identity, template)

	if err != nil {
		templateLogger.Error("error creating template", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetTemplate get template by id.
// @Tags TEMPLATE
// @Summary get template by id.
// @Schemes
// @Description get template by id.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Template ID"
// @Produce json
// @Success 200 {object} dto.TemplateDto
// @Router /templates/{id} [get]
func GetTemplate(c *gin.Context) {
	templateId := c.Param("id")

	t, err := templateService.GetById(c.Request.Context(), templateId)

	if err != nil {
		templateLogger.Error("error getting template", slog.String("error", err.Error()))
		if errors.Is(err, service.ErrTemplateNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTemplate update template by id.
// @Tags TEMPLATE
// @Summary update template by id.
// @Schemes
// @Description update template subject and/or body.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Template ID"
// @Param request body dto.UpdateTemplateDto true "update template dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.TemplateDto
// @Router /templates/{id} [patch]
func UpdateTemplate(c *gin.Context) {
	templateId := c.Param("id")

	var template dto.UpdateTemplateDto

	if err := c.ShouldBindJSON(&template); err != nil {
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
		templateLogger.Error("error on validation", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to update template",
		})
		return
	}

	updated, err := templateService.Update(c.Request.Context(), templateId, template)

	if err != nil {
		templateLogger.Error("error updating template", slog.String("error", err.Error()))
		var status = http.StatusInternalServerError
		if errors.Is(err, service.ErrTemplateNotFound) {
			status = http.StatusNotFound
		}
		c.AbortWithStatusJSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTemplate delete template by id.
// @Tags TEMPLATE
// @Summary delete template by id.
// @Schemes
// @Description delete template by id.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Template ID"
// @Success 204
// @Router /templates/{id} [delete]
func DeleteTemplate(c *gin.Context) {
	templateId := c.Param("id")

	err := templateService.Delete(c.Request.Context(), templateId)

	if err != nil {
		templateLogger.Error("error deleting template", slog.String("error", err.Error()))
		var status = http.StatusInternalServerError
		if errors.Is(err, service.ErrTemplateNotFound) {
			status = http.StatusNotFound
		}
		c.AbortWithStatusJSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// RenderTemplate render template against a contact.
// @Tags TEMPLATE
// @Summary render template against a contact.
// @Schemes
// @Description fills {name}, {district} and {school} from the contact. Only
// @Description the first occurrence of each placeholder is replaced.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Template ID"
// @Param request body dto.RenderTemplateDto true "render template dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.RenderedTemplateDto
// @Router /templates/{id}/render [post]
func RenderTemplate(c *gin.Context) {
	templateId := c.Param("id")

	var input dto.RenderTemplateDto

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

	rendered, err := templateService.Render(c.Request.Context(), templateId, input.ContactId)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound), errors.Is(err, service.ErrContactNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			templateLogger.Error("error rendering template", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error rendering template"})
		}
		return
	}

	c.JSON(http.StatusOK, rendered)
}

// SendTemplate render and email template to a contact.
// @Tags TEMPLATE
// @Summary render and email template to a contact.
// @Schemes
// @Description renders the template for the contact and emails it to them.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Template ID"
// @Param request body dto.SendTemplateDto true "send template dto"
// @Accept json
// @Produce json
// @Success 204
// @Router /templates/{id}/send [post]
func SendTemplate(c *gin.Context) {
	templateId := c.Param("id")

	var input dto.SendTemplateDto

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

	err := templateService.Send(c.Request.Context(), templateId, input.ContactId)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound), errors.Is(err, service.ErrContactNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrContactMissingEmail):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			templateLogger.Error("error sending template", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error sending template"})
		}
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}
