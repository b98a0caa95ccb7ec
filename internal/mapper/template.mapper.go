package mapper

import (
	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
)

func MapTemplateModelToDto(m model.TemplateItem) dto.TemplateDto {
	return dto.TemplateDto{
		Id:        m.Id,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedBy: m.CreatedBy,
	}
}

// maps the template form to a fresh item stamped with the creator.
func MapCreateTemplateDtoToModel(creator string, d dto.CreateTemplateDto) model.TemplateItem {
	return *model.NewTemplateItem(creator, d.Subject, d.Body)
}

func MapTemplateUpdateToModel(d dto.UpdateTemplateDto) model.UpdateTemplate {
	return model.UpdateTemplate{
		Subject: d.Subject,
		Body:    d.Body,
	}
}
