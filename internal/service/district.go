package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/mapper"
	"github.com/xEpiqq/hivecrm/internal/model"
)

var ErrDistrictNotFound = errors.New("district not found")

type DistrictRepository interface {
	GetByState(ctx context.Context, state string) ([]model.DistrictItem, error)
	Get(ctx context.Context, state, link string) (*model.DistrictItem, error)
	Create(ctx context.Context, district model.DistrictItem) error
	SetCompleted(ctx context.Context, state, link string, completed bool) (*model.DistrictItem, error)
}

type DistrictService struct {
	Store DistrictRepository
}

func NewDistrictSvc(s DistrictRepository) *DistrictService {

	return &DistrictService{
		Store: s,
	}
}

// Search returns a state's districts, optionally narrowed by a
// case-insensitive substring match on the district name. A state with no
// reference data yields an empty list.
func (d *DistrictService) Search(ctx context.Context, state, query string) ([]dto.DistrictDto, error) {
	state = mapper.NormalizeState(state)

	items, err := d.Store.GetByState(ctx, state)

	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	dtos := make([]dto.DistrictDto, 0, len(items))

	for _, item := range items {
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		dtos = append(dtos, mapper.MapDistrictModelToDto(item))
	}

	districtLogger.Debug("district search.", slog.String("state", state), slog.String("query", query), slog.Int("matches", len(dtos)))

	return dtos, nil
}

func (d *DistrictService) Get(ctx context.Context, state, link string) (*dto.DistrictDto, error) {
	item, err := d.Store.Get(ctx, mapper.NormalizeState(state), link)

	if err != nil {
		return nil, err
	}

	if item == nil {
		return nil, ErrDistrictNotFound
	}

	out := mapper.MapDistrictModelToDto(*item)
	return &out, nil
}

// SetCompleted marks or unmarks the district as reached out. Marking stamps
// the completion time, unmarking clears it.
func (d *DistrictService) SetCompleted(ctx context.Context, state, link string, completed bool) (dto.DistrictDto, error) {
	item, err := d.Store.SetCompleted(ctx, mapper.NormalizeState(state), link, completed)

	if err != nil {
		return dto.DistrictDto{}, err
	}

	if item == nil {
		return dto.DistrictDto{}, ErrDistrictNotFound
	}

	return mapper.MapDistrictModelToDto(*item), nil
}
