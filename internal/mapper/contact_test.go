package mapper

import (
	"testing"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/model"
)

func TestNormalizeState(t *testing.T) {
	cases := map[string]string{
		"Utah":       "utah",
		" NEW york ": "new york",
		"idaho":      "idaho",
		"":           "",
	}

	for in, want := range cases {
		if got := NormalizeState(in); got != want {
			t.Errorf("NormalizeState(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapCreateContactToModel(t *testing.T) {
	in := dto.CreateContact{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		State:          "Utah",
		SchoolDistrict: "Alpine",
		School:         "Lone Peak High",
		Link:           "alpine-district",
	}

	item := MapCreateContactToModel("user-1", in)

	if item.Id == "" {
		t.Error("expected generated id")
	}
	if item.UserId != "user-1" {
		t.Errorf("userId = %q, want user-1", item.UserId)
	}
	if item.State != "utah" {
		t.Errorf("state = %q, want utah", item.State)
	}
	if item.Link == nil || *item.Link != "alpine-district" {
		t.Errorf("link = %v, want alpine-district", item.Link)
	}
	if item.CreatedAt == "" {
		t.Error("expected createdAt stamp")
	}
}

func TestMapContactModelToDtoEmptyLists(t *testing.T) {
	out := MapContactModelToDto(model.ContactItem{Id: "x"})

	if out.EmailedDates == nil || out.CalledNotes == nil || out.VideoCalledDates == nil {
		t.Error("expected empty slices, got nil")
	}
	if len(out.EmailedDates) != 0 {
		t.Errorf("expected no dates, got %d", len(out.EmailedDates))
	}
}
