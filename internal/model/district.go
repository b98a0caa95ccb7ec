package model

// NoValidLink is the sentinel the reference import writes when a district has
// no usable website.
const NoValidLink = "No valid link found"

// DistrictItem is one school district inside a state's reference collection.
// State is the partition key (lower-cased state name), Link the sort key.
// Contacts is stored as a dynamo string set so membership can be mutated with
// ADD/DELETE expressions; it is absent while empty.
type DistrictItem struct {
	State       string   `json:"state"`
	Link        string   `json:"link"`
	Name        string   `json:"name"`
	Site        string   `json:"site"`
	Completed   bool     `json:"completed"`
	CompletedAt *string  `json:"completedAt,omitempty"`
	Contacts    []string `json:"contacts,omitempty"`
}
