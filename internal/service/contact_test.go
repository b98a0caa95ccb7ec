package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xEpiqq/hivecrm/internal/database"
	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
)

// fakeContactStore is an in-memory ContactRepository shared by the contact,
// follow-up and template tests.
type fakeContactStore struct {
	items map[string]*model.ContactItem
	order []string
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{items: make(map[string]*model.ContactItem)}
}

func (f *fakeContactStore) Create(ctx context.Context, contact model.ContactItem) error {
	c := contact
	f.items[c.Id] = &c
	f.order = append(f.order, c.Id)
	return nil
}

func (f *fakeContactStore) List(ctx context.Context) ([]model.ContactItem, error) {
	out := make([]model.ContactItem, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.items[id])
	}
	return out, nil
}

func (f *fakeContactStore) GetById(ctx context.Context, id string) (*model.ContactItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	c := *item
	return &c, nil
}

func (f *fakeContactStore) Update(ctx context.Context, id string, patch database.PatchContactItem) (*model.ContactItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Email != nil {
		item.Email = *patch.Email
	}
	if patch.Phone != nil {
		item.Phone = *patch.Phone
	}
	if patch.State != nil {
		item.State = *patch.State
	}
	if patch.SchoolDistrict != nil {
		item.SchoolDistrict = *patch.SchoolDistrict
	}
	if patch.School != nil {
		item.School = *patch.School
	}
	if patch.Link != nil {
		item.Link = patch.Link
	}
	c := *item
	return &c, nil
}

func (f *fakeContactStore) Delete(ctx context.Context, contact model.ContactItem) error {
	delete(f.items, contact.Id)
	for i, id := range f.order {
		if id == contact.Id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeContactStore) lists(id string, field string) *[]string {
	item := f.items[id]
	switch field {
	case "emailedDates":
		return &item.EmailedDates
	case "calledDates":
		return &item.CalledDates
	case "videoCalledDates":
		return &item.VideoCalledDates
	case "emailedNotes":
		return &item.EmailedNotes
	case "calledNotes":
		return &item.CalledNotes
	case "videoCalledNotes":
		return &item.VideoCalledNotes
	}
	return nil
}

func (f *fakeContactStore) AppendDate(ctx context.Context, id string, channel model.Channel, ts string) (*model.ContactItem, error) {
	if _, ok := f.items[id]; !ok {
		return nil, nil
	}
	list := f.lists(id, channel.DateField())
	*list = append(*list, ts)
	c := *f.items[id]
	return &c, nil
}

func (f *fakeContactStore) AppendNote(ctx context.Context, id string, channel model.Channel, text string) (*model.ContactItem, error) {
	if _, ok := f.items[id]; !ok {
		return nil, nil
	}
	list := f.lists(id, channel.NoteField())
	*list = append(*list, text)
	c := *f.items[id]
	return &c, nil
}

func (f *fakeContactStore) RemoveDateAt(ctx context.Context, id string, channel model.Channel, index int) (*model.ContactItem, error) {
	if _, ok := f.items[id]; !ok {
		return nil, nil
	}
	list := f.lists(id, channel.DateField())
	if index < 0 || index >= len(*list) {
		return nil, database.ErrIndexOutOfRange
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	c := *f.items[id]
	return &c, nil
}

func (f *fakeContactStore) SetNoteAt(ctx context.Context, id string, channel model.Channel, index int, text string) (*model.ContactItem, error) {
	if _, ok := f.items[id]; !ok {
		return nil, nil
	}
	list := f.lists(id, channel.NoteField())
	if index < 0 || index >= len(*list) {
		return nil, database.ErrIndexOutOfRange
	}
	(*list)[index] = text
	c := *f.items[id]
	return &c, nil
}

func seedContact(t *testing.T, store *fakeContactStore, name string) model.ContactItem {
	t.Helper()
	item := *model.NewContactItem("user-1", name, name+"@example.com", "", "utah", "Alpine", "Lone Peak", nil)
	if err := store.Create(context.Background(), item); err != nil {
		t.Fatal(err)
	}
	return item
}

func TestRecordEventAppends(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)
	contact := seedContact(t, store, "jane")

	out, err := svc.RecordEvent(context.Background(), contact.Id, model.Emailed)

	if err != nil {
		t.Fatal(err)
	}
	if len(out.EmailedDates) != 1 {
		t.Fatalf("expected 1 emailed date, got %d", len(out.EmailedDates))
	}
	if len(out.CalledDates) != 0 || len(out.VideoCalledDates) != 0 {
		t.Error("other channels should be untouched")
	}

	out, err = svc.RecordEvent(context.Background(), contact.Id, model.Emailed)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.EmailedDates) != 2 {
		t.Fatalf("expected 2 emailed dates, got %d", len(out.EmailedDates))
	}
}

func TestUndoLastEventRemovesOnlyLatest(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)
	contact := seedContact(t, store, "jane")

	store.items[contact.Id].CalledDates = []string{"2026-01-01T00:00:00Z", "2026-01-02T00:00:00Z"}
	store.items[contact.Id].CalledNotes = []string{"left voicemail"}

	out, err := svc.UndoLastEvent(context.Background(), contact.Id, model.Called)

	if err != nil {
		t.Fatal(err)
	}
	if len(out.CalledDates) != 1 || out.CalledDates[0] != "2026-01-01T00:00:00Z" {
		t.Fatalf("expected the latest date removed, got %v", out.CalledDates)
	}
	if len(out.CalledNotes) != 1 {
		t.Error("undo must not touch notes")
	}
}

func TestUndoLastEventEmptyChannel(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)
	contact := seedContact(t, store, "jane")

	_, err := svc.UndoLastEvent(context.Background(), contact.Id, model.VideoCalled)

	if !errors.Is(err, ErrNoEngagements) {
		t.Fatalf("expected ErrNoEngagements, got %v", err)
	}
}

func TestNotesIndependentFromDates(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)
	contact := seedContact(t, store, "jane")

	if _, err := svc.AddNote(context.Background(), contact.Id, model.Emailed, "sent intro email"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddNote(context.Background(), contact.Id, model.Emailed, "second note"); err != nil {
		t.Fatal(err)
	}

	out, err := svc.GetById(context.Background(), contact.Id)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.EmailedNotes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(out.EmailedNotes))
	}
	if len(out.EmailedDates) != 0 {
		t.Error("adding notes must not record engagements")
	}
}

func TestEditNote(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)
	contact := seedContact(t, store, "jane")

	if _, err := svc.AddNote(context.Background(), contact.Id, model.Called, "first draft"); err != nil {
		t.Fatal(err)
	}

	out, err := svc.EditNote(context.Background(), contact.Id, model.Called, 0, "final note")
	if err != nil {
		t.Fatal(err)
	}
	if out.CalledNotes[0] != "final note" {
		t.Fatalf("expected edited note, got %q", out.CalledNotes[0])
	}

	_, err = svc.EditNote(context.Background(), contact.Id, model.Called, 5, "out of range")
	if !errors.Is(err, ErrNoteIndexOutOfRange) {
		t.Fatalf("expected ErrNoteIndexOutOfRange, got %v", err)
	}

	_, err = svc.EditNote(context.Background(), "nope", model.Called, 0, "missing contact")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestGetByIdMissing(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)

	_, err := svc.GetById(context.Background(), "nope")

	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestCreateStampsActor(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)

	out, err := svc.Create(context.Background(), dto.Identity{Uid: "user-42"}, dto.CreateContact{
		Name:  "New Teacher",
		State: "Idaho",
	})

	if err != nil {
		t.Fatal(err)
	}
	if out.UserId != "user-42" {
		t.Errorf("userId = %q, want user-42", out.UserId)
	}
	if out.State != "idaho" {
		t.Errorf("state = %q, want idaho", out.State)
	}
	if out.EmailedDates == nil {
		t.Error("expected empty slices in dto, got nil")
	}
}

func TestUpdateNormalizesState(t *testing.T) {
	store := newFakeContactStore()
	svc := NewContactSvc(store)
	contact := seedContact(t, store, "jane")

	state := "New York"
	out, err := svc.Update(context.Background(), contact.Id, dto.PatchContact{State: &state})

	if err != nil {
		t.Fatal(err)
	}
	if out.State != "new york" {
		t.Errorf("state = %q, want new york", out.State)
	}
}
