package dto

type TemplateDto struct {
	Id        string `json:"id"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedBy string `json:"createdBy"`
}

type CreateTemplateDto struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type UpdateTemplateDto struct {
	Subject *string `json:"subject,omitempty" binding:"omitempty,min=1"`
	Body    *string `json:"body,omitempty" binding:"omitempty,min=1"`
}

// RenderTemplateDto names the contact whose fields fill the placeholders.
type RenderTemplateDto struct {
	ContactId string `json:"contactId" binding:"required,uuid"`
}

type SendTemplateDto struct {
	ContactId string `json:"contactId" binding:"required,uuid"`
}

// RenderedTemplateDto is the substituted subject/body pair.
type RenderedTemplateDto struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
