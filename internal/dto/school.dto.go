package dto

type SchoolDto struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Population int    `json:"population"`

	ChoirTeacher      string `json:"choirteacher"`
	ChoirTeacherPhone string `json:"choirteacherphone"`
	ChoirTeacherEmail string `json:"choirteacheremail"`
}

// SchoolListQuery drives the school browser: an optional state filter, a
// selectable page size and the opaque cursor returned by the previous page.
type SchoolListQuery struct {
	State  string `form:"state" binding:"omitempty,len=2,uppercase"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Cursor string `form:"cursor" binding:"omitempty"`
}

type PatchSchool struct {
	ChoirTeacher      *string `json:"choirteacher,omitempty"`
	ChoirTeacherPhone *string `json:"choirteacherphone,omitempty"`
	ChoirTeacherEmail *string `json:"choirteacheremail,omitempty"`
}

// SchoolPageDto is one load-more page. NextCursor is empty when the scan is
// exhausted.
type SchoolPageDto struct {
	Data       []SchoolDto `json:"data"`
	NextCursor string      `json:"nextCursor"`
}
