package history

import "encoding/json"

// Record kinds.
const (
	KindProfileAnalysis = "profile-analysis"
	KindRecommendations = "recommendations"
)

// Record is one saved run for a signed-in account. Profile analyses fill
// Username/Interests/Analysis; recommendation runs fill Age/Budget/Gifts.
type Record struct {
	ID        int             `json:"id"`
	AccountID int             `json:"-"`
	Kind      string          `json:"kind"`
	Username  string          `json:"username,omitempty"`
	Age       int             `json:"age,omitempty"`
	Budget    float64         `json:"budget,omitempty"`
	Interests []string        `json:"interests,omitempty"`
	Analysis  string          `json:"analysis,omitempty"`
	Gifts     json.RawMessage `json:"gifts,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
}
