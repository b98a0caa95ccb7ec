package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/mapper"
	"github.com/xEpiqq/hivecrm/internal/model"
	"github.com/xEpiqq/hivecrm/pkg/email"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	// ErrContactMissingEmail means a send was requested for a contact we have
	// no email address for.
	ErrContactMissingEmail = errors.New("contact has no email address")
)

type TemplateRepository interface {
	Create(ctx context.Context, template model.TemplateItem) error
	List(ctx context.Context) ([]model.TemplateItem, error)
	GetById(ctx context.Context, id string) (*model.TemplateItem, error)
	Update(ctx context.Context, id string, patch model.UpdateTemplate) (*model.TemplateItem, error)
	Delete(ctx context.Context, id string) error
}

type EmailSender interface {
	Send(ctx context.Context, e *email.Email) error
}

type TemplateService struct {
	Store    TemplateRepository
	Contacts ContactRepository
	Sender   EmailSender
	From     string
}

func NewTemplateSvc(s TemplateRepository, contacts ContactRepository, sender EmailSender, from string) *TemplateService {

	return &TemplateService{
		Store:    s,
		Contacts: contacts,
		Sender:   sender,
		From:     from,
	}
}

// Substitute fills the {name}, {district} and {school} placeholders from the
// contact. Only the first occurrence of each placeholder is replaced; repeated
// placeholders stay literal. Missing contact fields substitute as empty.
func Substitute(text string, c model.ContactItem) string {
	text = strings.Replace(text, "{name}", c.Name, 1)
	text = strings.Replace(text, "{district}", c.SchoolDistrict, 1)
	text = strings.Replace(text, "{school}", c.School, 1)
	return text
}

func (t *TemplateService) Create(ctx context.Context, actor dto.Identity, in dto.CreateTemplateDto) (dto.TemplateDto, error) {
	item := mapper.MapCreateTemplateDtoToModel(actor.Uid, in)

	if err := t.Store.Create(ctx, item); err != nil {
		return dto.TemplateDto{}, err
	}

	return mapper.MapTemplateModelToDto(item), nil
}

func (t *TemplateService) List(ctx context.Context) ([]dto.TemplateDto, error) {
	items, err := t.Store.List(ctx)

	if err != nil {
		return nil, err
	}

	dtos := make([]dto.TemplateDto, 0, len(items))

	for _, item := range items {
		dtos = append(dtos, mapper.MapTemplateModelToDto(item))
	}
	return dtos, nil
}

func (t *TemplateService) GetById(ctx context.Context, id string) (*dto.TemplateDto, error) {
	item, err := t.Store.GetById(ctx, id)

	if err != nil {
		return nil, err
	}

	if item == nil {
		return nil, ErrTemplateNotFound
	}

	out := mapper.MapTemplateModelToDto(*item)
	return &out, nil
}

func (t *TemplateService) Update(ctx context.Context, id string, patch dto.UpdateTemplateDto) (dto.TemplateDto, error) {
	item, err := t.Store.Update(ctx, id, mapper.MapTemplateUpdateToModel(patch))

	if err != nil {
		return dto.TemplateDto{}, err
	}

	if item == nil {
		return dto.TemplateDto{}, ErrTemplateNotFound
	}

	return mapper.MapTemplateModelToDto(*item), nil
}

func (t *TemplateService) Delete(ctx context.Context, id string) error {
	item, err := t.Store.GetById(ctx, id)

	if err != nil {
		return err
	}

	if item == nil {
		return ErrTemplateNotFound
	}

	return t.Store.Delete(ctx, id)
}

// Render produces the template's subject and body with the placeholders
// filled from the given contact.
func (t *TemplateService) Render(ctx context.Context, templateId, contactId string) (dto.RenderedTemplateDto, error) {
	item, err := t.Store.GetById(ctx, templateId)

	if err != nil {
		return dto.RenderedTemplateDto{}, err
	}

	if item == nil {
		return dto.RenderedTemplateDto{}, ErrTemplateNotFound
	}

	contact, err := t.Contacts.GetById(ctx, contactId)

	if err != nil {
		return dto.RenderedTemplateDto{}, err
	}

	if contact == nil {
		return dto.RenderedTemplateDto{}, ErrContactNotFound
	}

	return dto.RenderedTemplateDto{
		Subject: Substitute(item.Subject, *contact),
		Body:    Substitute(item.Body, *contact),
	}, nil
}

// Send renders the template for the contact and emails it to them.
func (t *TemplateService) Send(ctx context.Context, templateId, contactId string) error {
	item, err := t.Store.GetById(ctx, templateId)

	if err != nil {
		return err
	}

	if item == nil {
		return ErrTemplateNotFound
	}

	contact, err := t.Contacts.GetById(ctx, contactId)

	if err != nil {
		return err
	}

	if contact == nil {
		return ErrContactNotFound
	}

	if contact.Email == "" {
		return ErrContactMissingEmail
	}

	e := email.NewEmail(
		Substitute(item.Subject, *contact),
		Substitute(item.Body, *contact),
		t.From,
		[]string{contact.Email},
		nil,
	)

	if err := t.Sender.Send(ctx, e); err != nil {
		templateLogger.Error("failed to send template.",
			slog.String("templateId", templateId),
			slog.String("contactId", contactId),
			slog.String("error", err.Error()))
		return err
	}

	templateLogger.Info("template sent.", slog.String("templateId", templateId), slog.String("contactId", contactId))

	return nil
}
