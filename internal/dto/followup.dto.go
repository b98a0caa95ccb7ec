package dto

// FollowUpContact is a contact due for follow-up, annotated with its most
// recent engagement for display. LastContacted is nil for contacts that were
// never reached.
type FollowUpContact struct {
	ContactDto
	LastContacted         *string `json:"lastContacted"`
	LastContactedRelative string  `json:"lastContactedRelative"`
}
