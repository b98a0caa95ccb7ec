package mapper

import (
	"strings"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
)

// NormalizeState folds a state name to the stored form: trimmed, lower-cased.
// District partitions and contact rows must agree on it.
func NormalizeState(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// maps a stored contact to its api shape. Empty lists come back as [] rather
// than null so the client can index into them without guards.
func MapContactModelToDto(m model.ContactItem) dto.ContactDto {
	return dto.ContactDto{
		Id:             m.Id,
		UserId:         m.UserId,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		State:          m.State,
		SchoolDistrict: m.SchoolDistrict,
		School:         m.School,
		Link:           m.Link,

		EmailedDates:     orEmpty(m.EmailedDates),
		CalledDates:      orEmpty(m.CalledDates),
		VideoCalledDates: orEmpty(m.VideoCalledDates),

		EmailedNotes:     orEmpty(m.EmailedNotes),
		CalledNotes:      orEmpty(m.CalledNotes),
		VideoCalledNotes: orEmpty(m.VideoCalledNotes),

		CreatedAt: m.CreatedAt,
	}
}

// maps the contact form to a fresh item stamped with the creator.
func MapCreateContactToModel(creator string, d dto.CreateContact) model.ContactItem {
	var link *string
	if d.Link != "" {
		link = &d.Link
	}

	item := *model.NewContactItem(
		creator,
		d.Name,
		d.Email,
		d.Phone,
		NormalizeState(d.State),
		d.SchoolDistrict,
		d.School,
		link,
	)

	// imports may carry their own creation stamp
	if d.CreatedAt != "" {
		item.CreatedAt = d.CreatedAt
	}

	return item
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
