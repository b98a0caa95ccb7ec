package dto

type ContactDto struct {
	Id             string  `json:"id"`
	UserId         string  `json:"userId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	State          string  `json:"state"`
	SchoolDistrict string  `json:"schoolDistrict"`
	School         string  `json:"school"`
	Link           *string `json:"link"`

	EmailedDates     []string `json:"emailedDates"`
	CalledDates      []string `json:"calledDates"`
	VideoCalledDates []string `json:"videoCalledDates"`

	EmailedNotes     []string `json:"emailedNotes"`
	CalledNotes      []string `json:"calledNotes"`
	VideoCalledNotes []string `json:"videoCalledNotes"`

	CreatedAt string `json:"createdAt"`
}

// CreateContact is the contact form payload. Name is the only required field;
// Link, when present, must be accompanied by State so the district back
// reference can be maintained. State is accepted in any casing and folded to
// lower case before storage.
type CreateContact struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone" binding:"omitempty"`
	State          string `json:"state" binding:"required_with=Link,omitempty"`
	SchoolDistrict string `json:"schoolDistrict"`
	School         string `json:"school"`
	Link           string `json:"link"`
	CreatedAt      string `json:"createdAt" binding:"omitempty,rfc3339"`
}

type PatchContact struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"`
	State          *string `json:"state,omitempty"`
	SchoolDistrict *string `json:"schoolDistrict,omitempty"`
	School         *string `json:"school,omitempty"`
	Link           *string `json:"link,omitempty"`
}

// NoteInput carries a free-text note, appended verbatim.
type NoteInput struct {
	Text string `json:"text" binding:"required"`
}

type EditNoteInput struct {
	Text string `json:"text" binding:"required"`
}
