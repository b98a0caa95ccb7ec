package service

import (
	"context"
	"testing"
	"time"

	"github.com/xEpiqq/hivecrm/internal/model"
)

func contactWithDates(emailed, called, videoCalled []string) model.ContactItem {
	return model.ContactItem{
		Id:               "c1",
		Name:             "jane",
		EmailedDates:     emailed,
		CalledDates:      called,
		VideoCalledDates: videoCalled,
	}
}

func TestEligibleNeverEngaged(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	if !Eligible(contactWithDates(nil, nil, nil), now) {
		t.Error("a contact with no engagements is always due")
	}
}

func TestEligibleThresholdIsStrict(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	exactly := now.Add(-FollowUpThreshold).Format(time.RFC3339)
	if Eligible(contactWithDates([]string{exactly}, nil, nil), now) {
		t.Error("an engagement exactly at the boundary still counts as recent")
	}

	justOver := now.Add(-FollowUpThreshold - time.Second).Format(time.RFC3339)
	if !Eligible(contactWithDates([]string{justOver}, nil, nil), now) {
		t.Error("a second past the boundary makes the contact due")
	}
}

func TestEligibleUsesLatestAcrossChannels(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	old := now.Add(-10 * 24 * time.Hour).Format(time.RFC3339)
	recent := now.Add(-time.Hour).Format(time.RFC3339)

	// a recent call shadows an old email
	if Eligible(contactWithDates([]string{old}, []string{recent}, nil), now) {
		t.Error("a recent engagement on any channel keeps the contact off the list")
	}

	if !Eligible(contactWithDates([]string{old}, nil, []string{old}), now) {
		t.Error("all engagements old means due")
	}
}

func TestEligibleMalformedTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// bad entries drop out of the computation instead of erroring
	if !Eligible(contactWithDates([]string{"not-a-date"}, nil, nil), now) {
		t.Error("only unparseable timestamps means never contacted, so due")
	}

	recent := now.Add(-time.Hour).Format(time.RFC3339)
	if Eligible(contactWithDates([]string{"not-a-date", recent}, nil, nil), now) {
		t.Error("a valid recent engagement must still count")
	}
}

func TestEligibleMonotonicUnderNewDates(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	old := now.Add(-10 * 24 * time.Hour).Format(time.RFC3339)
	older := now.Add(-20 * 24 * time.Hour).Format(time.RFC3339)
	recent := now.Add(-time.Hour).Format(time.RFC3339)

	// adding a date can only keep or remove eligibility, never grant it
	if !Eligible(contactWithDates([]string{old}, nil, nil), now) {
		t.Fatal("stale contact should start due")
	}
	if !Eligible(contactWithDates([]string{old, older}, nil, nil), now) {
		t.Error("adding an older date must not change due status")
	}
	if Eligible(contactWithDates([]string{old, recent}, nil, nil), now) {
		t.Error("adding a recent date must remove the contact from the list")
	}
	if Eligible(contactWithDates([]string{recent, older}, nil, nil), now) {
		t.Error("an ineligible contact must stay ineligible when dates are added")
	}
}

func TestDueContactsAnnotation(t *testing.T) {
	store := newFakeContactStore()
	svc := NewFollowUpSvc(store)

	fresh := seedContact(t, store, "fresh")
	stale := seedContact(t, store, "stale")
	never := seedContact(t, store, "never")

	now := time.Now().UTC()
	store.items[fresh.Id].EmailedDates = []string{now.Add(-time.Hour).Format(time.RFC3339)}
	staleDate := now.Add(-5 * 24 * time.Hour).Format(time.RFC3339)
	store.items[stale.Id].CalledDates = []string{staleDate}

	due, err := svc.DueContacts(context.Background())

	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due contacts, got %d", len(due))
	}

	// storage order is preserved
	if due[0].Id != stale.Id || due[1].Id != never.Id {
		t.Errorf("unexpected order: %s, %s", due[0].Id, due[1].Id)
	}

	if due[0].LastContacted == nil || *due[0].LastContacted != staleDate {
		t.Errorf("expected lastContacted %s, got %v", staleDate, due[0].LastContacted)
	}
	if due[0].LastContactedRelative == "" {
		t.Error("expected a relative annotation")
	}

	if due[1].LastContacted != nil {
		t.Error("never-engaged contact must have nil lastContacted")
	}
	if due[1].LastContactedRelative != "never" {
		t.Errorf("expected 'never', got %q", due[1].LastContactedRelative)
	}
}
