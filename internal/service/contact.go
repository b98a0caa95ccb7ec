package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xEpiqq/hivecrm/internal/database"
	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/mapper"
	"github.com/xEpiqq/hivecrm/internal/model"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	// ErrNoEngagements means an undo was requested on a channel with nothing
	// recorded.
	ErrNoEngagements       = errors.New("no engagements recorded for channel")
	ErrNoteIndexOutOfRange = errors.New("note index out of range")
)

type ContactRepository interface {
	Create(ctx context.Context, contact model.ContactItem) error
	List(ctx context.Context) ([]model.ContactItem, error)
	GetById(ctx context.Context, id string) (*model.ContactItem, error)
	Update(ctx context.Context, id string, patch database.PatchContactItem) (*model.ContactItem, error)
	Delete(ctx context.Context, contact model.ContactItem) error
	AppendDate(ctx context.Context, id string, channel model.Channel, ts string) (*model.ContactItem, error)
	AppendNote(ctx context.Context, id string, channel model.Channel, text string) (*model.ContactItem, error)
	RemoveDateAt(ctx context.Context, id string, channel model.Channel, index int) (*model.ContactItem, error)
	SetNoteAt(ctx context.Context, id string, channel model.Channel, index int, text string) (*model.ContactItem, error)
}

type ContactService struct {
	Store ContactRepository
}

func NewContactSvc(s ContactRepository) *ContactService {

	return &ContactService{
		Store: s,
	}
}

func (c *ContactService) List(ctx context.Context) ([]dto.ContactDto, error) {
	items, err := c.Store.List(ctx)

	if err != nil {
		return nil, err
	}

	dtos := make([]dto.ContactDto, 0, len(items))

	for _, item := range items {
		dtos = append(dtos, mapper.MapContactModelToDto(item))
	}
	return dtos, nil
}

func (c *ContactService) GetById(ctx context.Context, id string) (*dto.ContactDto, error) {
	item, err := c.Store.GetById(ctx, id)

	if err != nil {
		return nil, err
	}

	if item == nil {
		return nil, ErrContactNotFound
	}

	d := mapper.MapContactModelToDto(*item)
	return &d, nil
}

// Create stores a new contact stamped with the acting user's id.
func (c *ContactService) Create(ctx context.Context, actor dto.Identity, in dto.CreateContact) (dto.ContactDto, error) {
	item := mapper.MapCreateContactToModel(actor.Uid, in)

	contactLogger.Info("creating contact.", slog.String("name", item.Name), slog.String("userId", item.UserId))

	if err := c.Store.Create(ctx, item); err != nil {
		return dto.ContactDto{}, err
	}

	return mapper.MapContactModelToDto(item), nil
}

// Update merges the patch into the contact. Editing state or link does not
// rewrite district membership; the contact keeps whatever back reference it
// got at creation.
func (c *ContactService) Update(ctx context.Context, id string, patch dto.PatchContact) (dto.ContactDto, error) {

	state := patch.State
	if state != nil {
		normalized := mapper.NormalizeState(*state)
		state = &normalized
	}

	item, err := c.Store.Update(ctx, id, database.PatchContactItem{
		Name:           patch.Name,
		Email:          patch.Email,
		Phone:          patch.Phone,
		State:          state,
		SchoolDistrict: patch.SchoolDistrict,
		School:         patch.School,
		Link:           patch.Link,
	})

	if err != nil {
		return dto.ContactDto{}, err
	}

	if item == nil {
		return dto.ContactDto{}, ErrContactNotFound
	}

	return mapper.MapContactModelToDto(*item), nil
}

// Delete removes the contact and its district back reference.
func (c *ContactService) Delete(ctx context.Context, id string) error {
	item, err := c.Store.GetById(ctx, id)

	if err != nil {
		return err
	}

	if item == nil {
		return ErrContactNotFound
	}

	return c.Store.Delete(ctx, *item)
}

// RecordEvent appends a now timestamp to the channel's engagement list and
// returns the refreshed contact.
func (c *ContactService) RecordEvent(ctx context.Context, id string, channel model.Channel) (dto.ContactDto, error) {
	ts := time.Now().UTC().Format(time.RFC3339)

	item, err := c.Store.AppendDate(ctx, id, channel, ts)

	if err != nil {
		return dto.ContactDto{}, err
	}

	if item == nil {
		return dto.ContactDto{}, ErrContactNotFound
	}

	contactLogger.Info("recorded engagement.", slog.String("contactId", id), slog.String("channel", string(channel)))

	return mapper.MapContactModelToDto(*item), nil
}

// UndoLastEvent removes the most recent timestamp from the channel. Notes are
// untouched, they live in their own lists.
func (c *ContactService) UndoLastEvent(ctx context.Context, id string, channel model.Channel) (dto.ContactDto, error) {
	item, err := c.Store.GetById(ctx, id)

	if err != nil {
		return dto.ContactDto{}, err
	}

	if item == nil {
		return dto.ContactDto{}, ErrContactNotFound
	}

	dates := item.Dates(channel)
	if len(dates) == 0 {
		return dto.ContactDto{}, ErrNoEngagements
	}

	updated, err := c.Store.RemoveDateAt(ctx, id, channel, len(dates)-1)

	if err != nil {
		if errors.Is(err, database.ErrIndexOutOfRange) {
			// lost the race with another removal
			return dto.ContactDto{}, ErrNoEngagements
		}
		return dto.ContactDto{}, err
	}

	return mapper.MapContactModelToDto(*updated), nil
}

// AddNote appends a note to the channel's note list.
func (c *ContactService) AddNote(ctx context.Context, id string, channel model.Channel, text string) (dto.ContactDto, error) {
	item, err := c.Store.AppendNote(ctx, id, channel, text)

	if err != nil {
		return dto.ContactDto{}, err
	}

	if item == nil {
		return dto.ContactDto{}, ErrContactNotFound
	}

	return mapper.MapContactModelToDto(*item), nil
}

// EditNote replaces the note at the given index.
func (c *ContactService) EditNote(ctx context.Context, id string, channel model.Channel, index int, text string) (dto.ContactDto, error) {
	item, err := c.Store.GetById(ctx, id)

	if err != nil {
		return dto.ContactDto{}, err
	}

	if item == nil {
		return dto.ContactDto{}, ErrContactNotFound
	}

	if index < 0 || index >= len(item.Notes(channel)) {
		return dto.ContactDto{}, ErrNoteIndexOutOfRange
	}

	updated, err := c.Store.SetNoteAt(ctx, id, channel, index, text)

	if err != nil {
		if errors.Is(err, database.ErrIndexOutOfRange) {
			// the note list shrank between the read and the write
			return dto.ContactDto{}, ErrNoteIndexOutOfRange
		}
		return dto.ContactDto{}, err
	}

	if updated == nil {
		return dto.ContactDto{}, ErrContactNotFound
	}

	return mapper.MapContactModelToDto(*updated), nil
}
