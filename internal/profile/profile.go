package profile

// Post is one scraped post enriched with the tag/mention lists derived from
// its caption.
type Post struct {
	URL      string   `json:"url,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	Likes    int      `json:"likes"`
	Hashtags []string `json:"hashtags"`
	Mentions []string `json:"mentions"`
}

// Profile is the request-scoped view of a scraped account.
type Profile struct {
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
	Posts    []Post `json:"posts"`
}

// Result is the payload of a profile analysis.
type Result struct {
	Profile   Profile  `json:"profile"`
	Interests []string `json:"interests"`
	Analysis  string   `json:"analysis"`
}
