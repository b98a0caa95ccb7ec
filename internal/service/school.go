package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/xEpiqq/hivecrm/internal/database"
	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/mapper"
	"github.com/xEpiqq/hivecrm/internal/model"
)

var (
	ErrSchoolNotFound = errors.New("school not found")
	ErrBadCursor      = errors.New("malformed page cursor")
)

// DefaultSchoolPageSize matches the browser's load-more batch.
const DefaultSchoolPageSize = 50

type SchoolRepository interface {
	Page(ctx context.Context, state, afterId string, limit int) (*database.SchoolPage, error)
	GetById(ctx context.Context, id string) (*model.SchoolItem, error)
	Update(ctx context.Context, id string, patch database.PatchSchoolItem) (*model.SchoolItem, error)
}

type SchoolService struct {
	Store SchoolRepository
}

// schoolCursor is the decoded page token. It remembers the state filter it
// was minted under so a filter change between requests restarts the listing
// instead of resuming mid-table with the wrong predicate.
type schoolCursor struct {
	State string `json:"state"`
	Id    string `json:"id"`
}

func NewSchoolSvc(s SchoolRepository) *SchoolService {

	return &SchoolService{
		Store: s,
	}
}

func encodeCursor(c schoolCursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(s string) (schoolCursor, error) {
	var c schoolCursor

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return c, ErrBadCursor
	}

	if err := json.Unmarshal(raw, &c); err != nil {
		return c, ErrBadCursor
	}

	return c, nil
}

// Page returns one batch of the school browser. The cursor is opaque to the
// caller; an empty NextCursor means the listing is exhausted.
func (s *SchoolService) Page(ctx context.Context, q dto.SchoolListQuery) (dto.SchoolPageDto, error) {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultSchoolPageSize
	}

	afterId := ""
	if q.Cursor != "" {
		cursor, err := decodeCursor(q.Cursor)
		if err != nil {
			return dto.SchoolPageDto{}, err
		}

		if cursor.State == q.State {
			afterId = cursor.Id
		} else {
			schoolLogger.Debug("cursor filter mismatch, restarting listing.",
				slog.String("cursorState", cursor.State),
				slog.String("queryState", q.State))
		}
	}

	page, err := s.Store.Page(ctx, q.State, afterId, limit)

	if err != nil {
		return dto.SchoolPageDto{}, err
	}

	out := dto.SchoolPageDto{
		Data: make([]dto.SchoolDto, 0, len(page.Items)),
	}

	for _, item := range page.Items {
		out.Data = append(out.Data, mapper.MapSchoolModelToDto(item))
	}

	if page.LastId != "" {
		out.NextCursor = encodeCursor(schoolCursor{State: q.State, Id: page.LastId})
	}

	return out, nil
}

func (s *SchoolService) GetById(ctx context.Context, id string) (*dto.SchoolDto, error) {
	item, err := s.Store.GetById(ctx, id)

	if err != nil {
		return nil, err
	}

	if item == nil {
		return nil, ErrSchoolNotFound
	}

	out := mapper.MapSchoolModelToDto(*item)
	return &out, nil
}

// UpdateChoirTeacher edits the only user-maintained school fields.
func (s *SchoolService) UpdateChoirTeacher(ctx context.Context, id string, patch dto.PatchSchool) (dto.SchoolDto, error) {
	item, err := s.Store.Update(ctx, id, database.PatchSchoolItem{
		ChoirTeacher:      patch.ChoirTeacher,
		ChoirTeacherPhone: patch.ChoirTeacherPhone,
		ChoirTeacherEmail: patch.ChoirTeacherEmail,
	})

	if err != nil {
		return dto.SchoolDto{}, err
	}

	if item == nil {
		return dto.SchoolDto{}, ErrSchoolNotFound
	}

	return mapper.MapSchoolModelToDto(*item), nil
}
