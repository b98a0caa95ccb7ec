package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
	"github.com/xEpiqq/hivecrm/pkg/email"
)

type fakeTemplateStore struct {
	items map[string]*model.TemplateItem
}

func newFakeTemplateStore() *fakeTemplateStore {
	return &fakeTemplateStore{items: make(map[string]*model.TemplateItem)}
}

func (f *fakeTemplateStore) Create(ctx context.Context, template model.TemplateItem) error {
	t := template
	f.items[t.Id] = &t
	return nil
}

func (f *fakeTemplateStore) List(ctx context.Context) ([]model.TemplateItem, error) {
	out := make([]model.TemplateItem, 0, len(f.items))
	for _, t := range f.items {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTemplateStore) GetById(ctx context.Context, id string) (*model.TemplateItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	t := *item
	return &t, nil
}

func (f *fakeTemplateStore) Update(ctx context.Context, id string, patch model.UpdateTemplate) (*model.TemplateItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Subject != nil {
		item.Subject = *patch.Subject
	}
	if patch.Body != nil {
		item.Body = *patch.Body
	}
	t := *item
	return &t, nil
}

func (f *fakeTemplateStore) Delete(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeSender struct {
	sent []*email.Email
	err  error
}

func (f *fakeSender) Send(ctx context.Context, e *email.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

func TestSubstituteFirstOccurrenceOnly(t *testing.T) {
	c := model.ContactItem{Name: "Jane", SchoolDistrict: "Alpine", School: "Lone Peak"}

	got := Substitute("Hi {name}, I loved visiting {school}. Again: {name}", c)
	want := "Hi Jane, I loved visiting Lone Peak. Again: {name}"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSubstituteMissingFields(t *testing.T) {
	got := Substitute("Hi {name} from {district}", model.ContactItem{})

	if got != "Hi  from " {
		t.Errorf("missing fields must substitute as empty, got %q", got)
	}
}

func TestSubstituteNoPlaceholders(t *testing.T) {
	c := model.ContactItem{Name: "Jane"}

	if got := Substitute("plain text", c); got != "plain text" {
		t.Errorf("got %q", got)
	}
}

func newTemplateSvcForTest() (*TemplateService, *fakeTemplateStore, *fakeContactStore, *fakeSender) {
	templates := newFakeTemplateStore()
	contacts := newFakeContactStore()
	sender := &fakeSender{}
	svc := NewTemplateSvc(templates, contacts, sender, "outreach@example.com")
	return svc, templates, contacts, sender
}

func TestRenderTemplate(t *testing.T) {
	svc, _, contacts, _ := newTemplateSvcForTest()

	created, err := svc.Create(context.Background(), dto.Identity{Uid: "user-1"}, dto.CreateTemplateDto{
		Subject: "Visit to {school}",
		Body:    "Hi {name}, greetings to {district}.",
	})
	if err != nil {
		t.Fatal(err)
	}

	contact := *model.NewContactItem("user-1", "Jane", "jane@example.com", "", "utah", "Alpine", "Lone Peak", nil)
	if err := contacts.Create(context.Background(), contact); err != nil {
		t.Fatal(err)
	}

	rendered, err := svc.Render(context.Background(), created.Id, contact.Id)

	if err != nil {
		t.Fatal(err)
	}
	if rendered.Subject != "Visit to Lone Peak" {
		t.Errorf("subject = %q", rendered.Subject)
	}
	if rendered.Body != "Hi Jane, greetings to Alpine." {
		t.Errorf("body = %q", rendered.Body)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	svc, _, _, _ := newTemplateSvcForTest()

	_, err := svc.Render(context.Background(), "nope", "also-nope")

	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestSendTemplate(t *testing.T) {
	svc, _, contacts, sender := newTemplateSvcForTest()

	created, err := svc.Create(context.Background(), dto.Identity{Uid: "user-1"}, dto.CreateTemplateDto{
		Subject: "Hello {name}",
		Body:    "Body for {school}",
	})
	if err != nil {
		t.Fatal(err)
	}

	contact := *model.NewContactItem("user-1", "Jane", "jane@example.com", "", "utah", "Alpine", "Lone Peak", nil)
	if err := contacts.Create(context.Background(), contact); err != nil {
		t.Fatal(err)
	}

	if err := svc.Send(context.Background(), created.Id, contact.Id); err != nil {
		t.Fatal(err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	sent := sender.sent[0]
	if sent.Subject != "Hello Jane" {
		t.Errorf("subject = %q", sent.Subject)
	}
	if sent.From != "outreach@example.com" {
		t.Errorf("from = %q", sent.From)
	}
	if len(sent.To) != 1 || sent.To[0] != "jane@example.com" {
		t.Errorf("to = %v", sent.To)
	}
}

func TestSendTemplateNoEmail(t *testing.T) {
	svc, _, contacts, sender := newTemplateSvcForTest()

	created, err := svc.Create(context.Background(), dto.Identity{Uid: "user-1"}, dto.CreateTemplateDto{
		Subject: "Hello",
		Body:    "Body",
	})
	if err != nil {
		t.Fatal(err)
	}

	contact := *model.NewContactItem("user-1", "Jane", "", "", "utah", "Alpine", "Lone Peak", nil)
	if err := contacts.Create(context.Background(), contact); err != nil {
		t.Fatal(err)
	}

	err = svc.Send(context.Background(), created.Id, contact.Id)

	if !errors.Is(err, ErrContactMissingEmail) {
		t.Fatalf("expected ErrContactMissingEmail, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Error("nothing should have been sent")
	}
}

func TestUpdateTemplateMissing(t *testing.T) {
	svc, _, _, _ := newTemplateSvcForTest()

	subject := "new subject"
	_, err := svc.Update(context.Background(), "nope", dto.UpdateTemplateDto{Subject: &subject})

	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
