package mapper

import (
	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
)

func MapDistrictModelToDto(m model.DistrictItem) dto.DistrictDto {
	return dto.DistrictDto{
		State:       m.State,
		Link:        m.Link,
		Name:        m.Name,
		Site:        m.Site,
		Completed:   m.Completed,
		CompletedAt: m.CompletedAt,
		Contacts:    orEmpty(m.Contacts),
	}
}
