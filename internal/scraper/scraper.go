// Package scraper pulls public profile data out of instagram pages with a
// headless browser. The markup is undocumented and shifts often, so the
// extraction prefers og: meta tags over deep DOM paths and every per-post
// failure just skips that post.
package scraper

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Post is the raw per-post scrape result.
type Post struct {
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
	Likes    int    `json:"likes"`
}

// ProfileData is what a successful scrape yields: the biography plus a
// bounded number of recent posts.
type ProfileData struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Posts    []Post `json:"posts"`
}

// Scraper loads a public profile. Implementations return (nil, err) when the
// profile page itself cannot be loaded; callers map that to a 404.
type Scraper interface {
	ScrapeProfile(ctx context.Context, username string) (*ProfileData, error)
}

var (
	likesRe = regexp.MustCompile(`([\d,\.]+[KkMm]?)\s+likes`)
	// og:title on a post page looks like `Name on Instagram: "the caption"`.
	captionRe = regexp.MustCompile(`(?s)on Instagram:\s*["\x{201C}](.*)["\x{201D}]\s*$`)
)

// parseLikes pulls the like count out of a post's og:description
// ("1,234 likes, 56 comments - ..."). Returns 0 when absent.
func parseLikes(desc string) int {
	m := likesRe.FindStringSubmatch(desc)
	if m == nil {
		return 0
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	mult := 1.0
	switch {
	case strings.HasSuffix(raw, "K"), strings.HasSuffix(raw, "k"):
		mult, raw = 1_000, raw[:len(raw)-1]
	case strings.HasSuffix(raw, "M"), strings.HasSuffix(raw, "m"):
		mult, raw = 1_000_000, raw[:len(raw)-1]
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(v * mult)
}

// parseCaption strips the `Name on Instagram: "..."` wrapper from a post
// page's og:title. Falls back to the raw value when the shape is unexpected.
func parseCaption(ogTitle string) string {
	m := captionRe.FindStringSubmatch(ogTitle)
	if m == nil {
		return strings.TrimSpace(ogTitle)
	}
	return strings.TrimSpace(m[1])
}
