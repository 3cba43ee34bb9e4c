package account

// Account is a registered user of the gift recommender. Only history
// endpoints require one; the analysis endpoints work anonymously.
type Account struct {
	ID        int    `json:"accountId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
