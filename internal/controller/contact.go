package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/trace"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
	"github.com/xEpiqq/hivecrm/internal/service"
)

var (
	tracer trace.Tracer
)

// GetContacts list every contact.
// @Tags CONTACT
// @Summary list every contact.
// @Schemes
// @Description lists the whole contact collection, no pagination.
// @Param Authorization header string true "Bearer token"
// @Produce json
// @Success 200 {array} dto.ContactDto
// @Router /contacts [get]
func GetContacts(c *gin.Context) {

	if contactDtoList, err := contactService.List(c.Request.Context()); err != nil {

		contactLogger.Error("GetContacts", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, map[string]string{
			"message": "Error while retrieving contacts",
		})

	} else {

		c.JSON(http.StatusOK, gin.H{
			"records": contactDtoList,
			"count":   len(contactDtoList),
		})
	}
}

// CreateContact create contact.
// @Tags CONTACT
// @Summary create contact.
// @Schemes
// @Description create contact. Providing a district link ties the contact to
// @Description the district both ways.
// @Param Authorization header string true "Bearer token"
// @Param request body dto.CreateContact true "create contact dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.ContactDto
// @Router /contacts [post]
func CreateContact(c *gin.Context) {
	identity := c.MustGet("identity").(dto.Identity)
	var contactDto dto.CreateContact

	if err := c.ShouldBindJSON(&contactDto); err != nil {
		contactLogger.Error("CreateContact validation error", slog.String("error", err.Error()))
		var ve validator.ValidationErrors

		if errors.As(err, &ve) {
			output := make([]ErrMsg, len(ve))
			for i, fe := range ve {
				output[i] = ErrMsg{
					Message: getErrorMsg(fe),
					Field:   fe.Field(),
				}
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": output,
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "error creating contact",
		})
		return
	}

	if contact, err := contactService.Create(c.Request.Context(), identity, contactDto); err != nil {
		contactLogger.Error("Error creating contact", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error creating contact"})
		return
	} else {
		c.JSON(http.StatusOK, contact)
	}

}

// UpdateContact update contact.
// @Tags CONTACT
// @Summary update contact.
// @Schemes
// @Description merges the provided fields into the contact.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Contact ID"
// @Param request body dto.PatchContact true "patch contact dto"
// @Produce json
// @Success 200 {object} dto.ContactDto
// @Router /contacts/{id} [patch]
func UpdateContact(c *gin.Context) {
	contactId, _ := c.Params.Get("id")
	var contactDto dto.PatchContact

	if err := c.ShouldBindJSON(&contactDto); err != nil {
		contactLogger.Error("Error validating UpdateContact payload", slog.String("error", err.Error()))
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

	contact, err := contactService.Update(c.Request.Context(), contactId, contactDto)

	if err != nil {
		contactLogger.Error("Error updating contact", slog.String("error", err.Error()))
		if errors.Is(err, service.ErrContactNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error updating contact"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// GetContactByID Get contact by ID
// @Tags CONTACT
// @Summary Get contact by ID
// @Schemes
// @Description Get contact by ID
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Contact ID"
// @Produce json
// @Success 200 {object} dto.ContactDto
// @Router /contacts/{id} [get]
func GetContactByID(c *gin.Context) {
	contactId, _ := c.Params.Get("id")

	contact, err := contactService.GetById(c.Request.Context(), contactId)

	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		contactLogger.Error("Error Getting contact by ID", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error getting contact"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact delete contact by ID.
// @Tags CONTACT
// @Summary delete contact by ID.
// @Schemes
// @Description deletes the contact and drops it from its district's member
// @Description list.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Contact ID"
// @Produce json
// @Success 204
// @Router /contacts/{id} [delete]
func DeleteContact(c *gin.Context) {
	contactId, _ := c.Params.Get("id")

	err := contactService.Delete(c.Request.Context(), contactId)

	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		contactLogger.Error("Error deleting contact", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error deleting contact"})
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

// RecordEngagement record an engagement on a channel.
// @Tags CONTACT
// @Summary record an engagement on a channel.
// @Schemes
// @Description appends a current timestamp to the channel's engagement list.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Contact ID"
// @Param channel path string true "emailed | called | videoCalled"
// @Produce json
// @Success 200 {object} dto.ContactDto
// @Router /contacts/{id}/engagements/{channel} [post]
func RecordEngagement(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "record-engagement-controller")
	defer span.End()

	contactId, _ := c.Params.Get("id")
	channel := model.Channel(c.Param("channel"))

	if !channel.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid channel"})
		return
	}

	contact, err := contactService.RecordEvent(ctx, contactId, channel)

	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		contactLogger.Error("Error recording engagement", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error recording engagement"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UndoEngagement remove the latest engagement on a channel.
// @Tags CONTACT
// @Summary remove the latest engagement on a channel.
// @Schemes
// @Description removes the most recent timestamp from the channel's
// @Description engagement list. Notes stay as they are.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Contact ID"
// @Param channel path string true "emailed | called | videoCalled"
// @Produce json
// @Success 200 {object} dto.ContactDto
// @Router /contacts/{id}/engagements/{channel} [delete]
func UndoEngagement(c *gin.Context) {
	contactId, _ := c.Params.Get("id")
	channel := model.Channel(c.Param("channel"))

	if !channel.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid channel"})
		return
	}

	contact, err := contactService.UndoLastEvent(c.Request.Context(), contactId, channel)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, service.ErrNoEngagements):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			contactLogger.Error("Error undoing engagement", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error undoing engagement"})
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}

// AddNote append a note on a channel.
// @Tags CONTACT
// @Summary append a note on a channel.
// @Schemes
// @Description appends the note to the channel's note list. Note lists are
// @Description independent from engagement lists.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Contact ID"
// @Param channel path string true "emailed | called | videoCalled"
// @Param request body dto.NoteInput true "note"
// @Accept json
// @Produce json
// @Success 200 {object} dto.ContactDto
// @Router /contacts/{id}/notes/{channel} [post]
func AddNote(c *gin.Context) {
	contactId, _ := c.Params.Get("id")
	channel := model.Channel(c.Param("channel"))

	if !channel.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid channel"})
		return
	}

	var note dto.NoteInput

	if err := c.ShouldBindJSON(&note); err != nil {
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

	contact, err := contactService.AddNote(c.Request.Context(), contactId, channel, note.Text)

	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		contactLogger.Error("Error adding note", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error adding note"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// EditNote replace a note on a channel.
// @Tags CONTACT
// @Summary replace a note on a channel.
// @Schemes
// @Description replaces the note at the given index. Notes cannot be removed.
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Contact ID"
// @Param channel path string true "emailed | called | videoCalled"
// @Param index path int true "note index, zero based"
// @Param request body dto.EditNoteInput true "note"
// @Accept json
// @Produce json
// @Success 200 {object} dto.ContactDto
// @Router /contacts/{id}/notes/{channel}/{index} [put]
func EditNote(c *gin.Context) {
	contactId, _ := c.Params.Get("id")
	channel := model.Channel(c.Param("channel"))

	if !channel.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid channel"})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))

	if err != nil || index < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid note index"})
		return
	}

	var note dto.EditNoteInput

	if err := c.ShouldBindJSON(&note); err != nil {
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

	contact, err := contactService.EditNote(c.Request.Context(), contactId, channel, index, note.Text)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, service.ErrNoteIndexOutOfRange):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			contactLogger.Error("Error editing note", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error editing note"})
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}
