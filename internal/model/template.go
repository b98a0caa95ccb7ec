package model

import "github.com/google/uuid"

// TemplateItem is a reusable outreach email. Body may carry {name},
// {district} and {school} placeholders substituted at render time.
type TemplateItem struct {
	Id        string `json:"id"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedBy string `json:"createdBy"`
}

type UpdateTemplate struct {
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}

func NewTemplateItem(createdBy, subject, body string) *TemplateItem {
	return &TemplateItem{
		Id:        uuid.New().String(),
		Subject:   subject,
		Body:      body,
		CreatedBy: createdBy,
	}
}
