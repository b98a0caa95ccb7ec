package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/xEpiqq/hivecrm/internal/database"
	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
)

type fakeSchoolStore struct {
	schools []model.SchoolItem
}

func (f *fakeSchoolStore) Page(ctx context.Context, state, afterId string, limit int) (*database.SchoolPage, error) {
	start := 0
	if afterId != "" {
		for i, s := range f.schools {
			if s.Id == afterId {
				start = i + 1
				break
			}
		}
	}

	page := &database.SchoolPage{}
	for i := start; i < len(f.schools); i++ {
		s := f.schools[i]
		if state != "" && s.State != state {
			continue
		}
		page.Items = append(page.Items, s)
		if len(page.Items) == limit {
			if i < len(f.schools)-1 {
				page.LastId = s.Id
			}
			return page, nil
		}
	}
	return page, nil
}

func (f *fakeSchoolStore) GetById(ctx context.Context, id string) (*model.SchoolItem, error) {
	for _, s := range f.schools {
		if s.Id == id {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeSchoolStore) Update(ctx context.Context, id string, patch database.PatchSchoolItem) (*model.SchoolItem, error) {
	for i := range f.schools {
		if f.schools[i].Id == id {
			if patch.ChoirTeacher != nil {
				f.schools[i].ChoirTeacher = *patch.ChoirTeacher
			}
			if patch.ChoirTeacherPhone != nil {
				f.schools[i].ChoirTeacherPhone = *patch.ChoirTeacherPhone
			}
			if patch.ChoirTeacherEmail != nil {
				f.schools[i].ChoirTeacherEmail = *patch.ChoirTeacherEmail
			}
			out := f.schools[i]
			return &out, nil
		}
	}
	return nil, nil
}

func newFakeSchoolStore(n int) *fakeSchoolStore {
	store := &fakeSchoolStore{}
	for i := 0; i < n; i++ {
		state := "UT"
		if i%2 == 1 {
			state = "ID"
		}
		store.schools = append(store.schools, model.SchoolItem{
			Id:    fmt.Sprintf("school-%03d", i),
			Name:  fmt.Sprintf("School %d", i),
			State: state,
		})
	}
	return store
}

func TestSchoolPageWalksWholeListing(t *testing.T) {
	store := newFakeSchoolStore(7)
	svc := NewSchoolSvc(store)

	seen := make(map[string]bool)
	cursor := ""
	pages := 0

	for {
		page, err := svc.Page(context.Background(), dto.SchoolListQuery{Limit: 3, Cursor: cursor})
		if err != nil {
			t.Fatal(err)
		}
		pages++
		for _, s := range page.Data {
			if seen[s.Id] {
				t.Fatalf("school %s returned twice", s.Id)
			}
			seen[s.Id] = true
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if len(seen) != 7 {
		t.Fatalf("expected 7 schools across pages, got %d", len(seen))
	}
	if pages != 3 {
		t.Errorf("expected 3 pages, got %d", pages)
	}
}

func TestSchoolPageStateFilter(t *testing.T) {
	store := newFakeSchoolStore(8)
	svc := NewSchoolSvc(store)

	page, err := svc.Page(context.Background(), dto.SchoolListQuery{State: "ID", Limit: 10})

	if err != nil {
		t.Fatal(err)
	}
	if len(page.Data) != 4 {
		t.Fatalf("expected 4 ID schools, got %d", len(page.Data))
	}
	for _, s := range page.Data {
		if s.State != "ID" {
			t.Errorf("school %s has state %s", s.Id, s.State)
		}
	}
}

func TestSchoolPageCursorStateMismatchRestarts(t *testing.T) {
	store := newFakeSchoolStore(8)
	svc := NewSchoolSvc(store)

	first, err := svc.Page(context.Background(), dto.SchoolListQuery{State: "UT", Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if first.NextCursor == "" {
		t.Fatal("expected a next cursor")
	}

	// reuse the UT cursor with the ID filter, listing must restart
	second, err := svc.Page(context.Background(), dto.SchoolListQuery{State: "ID", Limit: 2, Cursor: first.NextCursor})
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Data) == 0 || second.Data[0].Id != "school-001" {
		t.Fatalf("expected the first ID school, got %v", second.Data)
	}
}

func TestSchoolPageBadCursor(t *testing.T) {
	svc := NewSchoolSvc(newFakeSchoolStore(2))

	_, err := svc.Page(context.Background(), dto.SchoolListQuery{Cursor: "!!not-base64!!"})

	if !errors.Is(err, ErrBadCursor) {
		t.Fatalf("expected ErrBadCursor, got %v", err)
	}
}

func TestSchoolCursorRoundTrip(t *testing.T) {
	in := schoolCursor{State: "UT", Id: "school-042"}

	out, err := decodeCursor(encodeCursor(in))

	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestUpdateChoirTeacher(t *testing.T) {
	store := newFakeSchoolStore(2)
	svc := NewSchoolSvc(store)

	name := "Pat Smith"
	out, err := svc.UpdateChoirTeacher(context.Background(), "school-000", dto.PatchSchool{ChoirTeacher: &name})

	if err != nil {
		t.Fatal(err)
	}
	if out.ChoirTeacher != "Pat Smith" {
		t.Errorf("choirTeacher = %q", out.ChoirTeacher)
	}

	_, err = svc.UpdateChoirTeacher(context.Background(), "nope", dto.PatchSchool{ChoirTeacher: &name})
	if !errors.Is(err, ErrSchoolNotFound) {
		t.Fatalf("expected ErrSchoolNotFound, got %v", err)
	}
}
