package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xEpiqq/hivecrm/internal/model"
)

type fakeDistrictStore struct {
	items map[string]map[string]*model.DistrictItem // state -> link -> item
}

func newFakeDistrictStore() *fakeDistrictStore {
	return &fakeDistrictStore{items: make(map[string]map[string]*model.DistrictItem)}
}

func (f *fakeDistrictStore) Create(ctx context.Context, district model.DistrictItem) error {
	if f.items[district.State] == nil {
		f.items[district.State] = make(map[string]*model.DistrictItem)
	}
	d := district
	f.items[district.State][district.Link] = &d
	return nil
}

func (f *fakeDistrictStore) GetByState(ctx context.Context, state string) ([]model.DistrictItem, error) {
	out := make([]model.DistrictItem, 0)
	for _, d := range f.items[state] {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDistrictStore) Get(ctx context.Context, state, link string) (*model.DistrictItem, error) {
	d, ok := f.items[state][link]
	if !ok {
		return nil, nil
	}
	out := *d
	return &out, nil
}

func (f *fakeDistrictStore) SetCompleted(ctx context.Context, state, link string, completed bool) (*model.DistrictItem, error) {
	d, ok := f.items[state][link]
	if !ok {
		return nil, nil
	}
	d.Completed = completed
	if completed {
		now := time.Now().UTC().Format(time.RFC3339)
		d.CompletedAt = &now
	} else {
		d.CompletedAt = nil
	}
	out := *d
	return &out, nil
}

func seedDistricts(t *testing.T, store *fakeDistrictStore) {
	t.Helper()
	for _, d := range []model.DistrictItem{
		{State: "utah", Link: "alpine", Name: "Alpine School District", Site: "https://alpine.example"},
		{State: "utah", Link: "granite", Name: "Granite School District", Site: "https://granite.example"},
		{State: "utah", Link: "provo", Name: "Provo City School District", Site: model.NoValidLink},
	} {
		if err := store.Create(context.Background(), d); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	store := newFakeDistrictStore()
	seedDistricts(t, store)
	svc := NewDistrictSvc(store)

	out, err := svc.Search(context.Background(), "Utah", "GRAN")

	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "Granite School District" {
		t.Fatalf("unexpected matches: %v", out)
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	store := newFakeDistrictStore()
	seedDistricts(t, store)
	svc := NewDistrictSvc(store)

	out, err := svc.Search(context.Background(), "utah", "")

	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 districts, got %d", len(out))
	}
}

func TestSearchUnknownState(t *testing.T) {
	store := newFakeDistrictStore()
	svc := NewDistrictSvc(store)

	out, err := svc.Search(context.Background(), "nowhere", "any")

	if err != nil {
		t.Fatal(err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}

func TestSetCompletedStampsAndClears(t *testing.T) {
	store := newFakeDistrictStore()
	seedDistricts(t, store)
	svc := NewDistrictSvc(store)

	out, err := svc.SetCompleted(context.Background(), "utah", "alpine", true)

	if err != nil {
		t.Fatal(err)
	}
	if !out.Completed || out.CompletedAt == nil {
		t.Fatal("expected completed with a timestamp")
	}
	if _, err := time.Parse(time.RFC3339, *out.CompletedAt); err != nil {
		t.Errorf("completedAt not RFC3339: %v", err)
	}

	out, err = svc.SetCompleted(context.Background(), "utah", "alpine", false)

	if err != nil {
		t.Fatal(err)
	}
	if out.Completed || out.CompletedAt != nil {
		t.Fatal("unmarking must clear the timestamp")
	}
}

func TestSetCompletedMissingDistrict(t *testing.T) {
	store := newFakeDistrictStore()
	svc := NewDistrictSvc(store)

	_, err := svc.SetCompleted(context.Background(), "utah", "nope", true)

	if !errors.Is(err, ErrDistrictNotFound) {
		t.Fatalf("expected ErrDistrictNotFound, got %v", err)
	}
}
