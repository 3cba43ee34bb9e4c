package gift

// Recommendation is a single gift suggestion. Prices come back from the model
// as a number or a string with currency symbols; parsing normalizes them.
type Recommendation struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	MatchReason string  `json:"matchReason"`
	AmazonLink  string  `json:"amazonLink"`
	EtsyLink    string  `json:"etsyLink"`
}
