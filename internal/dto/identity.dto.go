package dto

// Identity is the signed-in user as extracted from the bearer token. It is
// passed explicitly into every operation that stamps userId; it carries no
// authorization distinctions, anyone signed in sees everything.
type Identity struct {
	Uid         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}
