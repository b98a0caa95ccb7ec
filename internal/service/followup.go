package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/xEpiqq/hivecrm/internal/dto"
	"github.com/xEpiqq/hivecrm/internal/mapper"
	"github.com/xEpiqq/hivecrm/internal/model"
)

// FollowUpThreshold is how long a contact must sit untouched before it comes
// back onto the follow-up list. Strictly more than three days, an engagement
// exactly at the boundary still counts as recent.
const FollowUpThreshold = 72 * time.Hour

type FollowUpService struct {
	Store ContactRepository
}

func NewFollowUpSvc(s ContactRepository) *FollowUpService {

	return &FollowUpService{
		Store: s,
	}
}

// lastEngagement returns the latest timestamp across all three channels. The
// second return is false when no parseable engagement exists. A timestamp that
// does not parse is dropped from the computation so one bad record never takes
// down the whole listing.
func lastEngagement(c model.ContactItem) (latest time.Time, ok bool) {
	for _, ch := range model.Channels {
		for _, raw := range c.Dates(ch) {
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				followUpLogger.Warn("unparseable engagement date.",
					slog.String("contactId", c.Id),
					slog.String("channel", string(ch)),
					slog.String("value", raw))
				continue
			}
			if !ok || ts.After(latest) {
				latest = ts
				ok = true
			}
		}
	}
	return latest, ok
}

// Eligible reports whether the contact is due for follow-up at the given
// instant: never engaged, or last engaged strictly more than the threshold
// ago.
func Eligible(c model.ContactItem, now time.Time) bool {
	latest, ok := lastEngagement(c)

	if !ok {
		return true
	}

	return now.Sub(latest) > FollowUpThreshold
}

// DueContacts returns every contact currently due for follow-up, in storage
// order, each annotated with its most recent engagement.
func (f *FollowUpService) DueContacts(ctx context.Context) ([]dto.FollowUpContact, error) {
	items, err := f.Store.List(ctx)

	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	due := make([]dto.FollowUpContact, 0)

	for _, item := range items {
		if !Eligible(item, now) {
			continue
		}

		entry := dto.FollowUpContact{
			ContactDto: mapper.MapContactModelToDto(item),
		}

		if latest, ok := lastEngagement(item); ok {
			formatted := latest.Format(time.RFC3339)
			entry.LastContacted = &formatted
			entry.LastContactedRelative = humanize.Time(latest)
		} else {
			entry.LastContactedRelative = "never"
		}

		due = append(due, entry)
	}

	followUpLogger.Info("computed follow-up list.", slog.Int("due", len(due)), slog.Int("total", len(items)))

	return due, nil
}
