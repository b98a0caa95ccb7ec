package mapper

import (
	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
)

func MapSchoolModelToDto(m model.SchoolItem) dto.SchoolDto {
	return dto.SchoolDto{
		Id:         m.Id,
		Name:       m.Name,
		City:       m.City,
		State:      m.State,
		Population: m.Population,

		ChoirTeacher:      m.ChoirTeacher,
		ChoirTeacherPhone: m.ChoirTeacherPhone,
		ChoirTeacherEmail: m.ChoirTeacherEmail,
	}
}
