package model

import (
	"time"

	"github.com/google/uuid"
)

// Channel is one of the three ways we reach out to a contact.
type Channel string

const (
	Emailed     Channel = "emailed"
	Called      Channel = "called"
	VideoCalled Channel = "videoCalled"
)

var Channels = []Channel{Emailed, Called, VideoCalled}

func (c Channel) Valid() bool {
	switch c {
	case Emailed, Called, VideoCalled:
		return true
	}
	return false
}

// DateField is the item attribute holding the channel's engagement timestamps.
func (c Channel) DateField() string {
	return string(c) + "Dates"
}

// NoteField is the item attribute holding the channel's notes.
func (c Channel) NoteField() string {
	return string(c) + "Notes"
}

// ContactItem is the contact entity as stored in dynamo. The three *Dates
// lists are append-only RFC3339 timestamps; the *Notes lists are independent
// sequences, their lengths may diverge from the date lists.
type ContactItem struct {
	Id             string  `json:"id"`
	UserId         string  `json:"userId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	State          string  `json:"state"` // lower-cased US state name
	SchoolDistrict string  `json:"schoolDistrict"`
	School         string  `json:"school"`
	Link           *string `json:"link,omitempty"` // district identifier within State

	EmailedDates     []string `json:"emailedDates,omitempty"`
	CalledDates      []string `json:"calledDates,omitempty"`
	VideoCalledDates []string `json:"videoCalledDates,omitempty"`

	EmailedNotes     []string `json:"emailedNotes,omitempty"`
	CalledNotes      []string `json:"calledNotes,omitempty"`
	VideoCalledNotes []string `json:"videoCalledNotes,omitempty"`

	CreatedAt string `json:"createdAt"`
}

func NewContactItem(userId, name, email, phone, state, schoolDistrict, school string, link *string) *ContactItem {
	return &ContactItem{
		Id:             uuid.New().String(),
		UserId:         userId,
		Name:           name,
		Email:          email,
		Phone:          phone,
		State:          state,
		SchoolDistrict: schoolDistrict,
		School:         school,
		Link:           link,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// Dates returns the engagement timestamps for the given channel.
func (c *ContactItem) Dates(ch Channel) []string {
	switch ch {
	case Emailed:
		return c.EmailedDates
	case Called:
		return c.CalledDates
	case VideoCalled:
		return c.VideoCalledDates
	}
	return nil
}

// Notes returns the note list for the given channel.
func (c *ContactItem) Notes(ch Channel) []string {
	switch ch {
	case Emailed:
		return c.EmailedNotes
	case Called:
		return c.CalledNotes
	case VideoCalled:
		return c.VideoCalledNotes
	}
	return nil
}
