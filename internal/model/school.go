package model

// SchoolItem is one imported private school. The imported fields never change
// after the bulk load; only the choir teacher fields are user editable.
type SchoolItem struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Population int    `json:"population"`

	ChoirTeacher      string `json:"choirteacher"`
	ChoirTeacherPhone string `json:"choirteacherphone"`
	ChoirTeacherEmail string `json:"choirteacheremail"`
}
