package dto

type DistrictDto struct {
	State       string   `json:"state"`
	Link        string   `json:"link"`
	Name        string   `json:"name"`
	Site        string   `json:"site"`
	Completed   bool     `json:"completed"`
	CompletedAt *string  `json:"completedAt"`
	Contacts    []string `json:"contacts"`
}

type SetCompletedInput struct {
	Completed *bool `json:"completed" binding:"required"`
}
