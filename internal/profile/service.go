package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cdirks4/insta-gift/internal/inference"
	"github.com/cdirks4/insta-gift/internal/scraper"
)

// ErrProfileUnavailable means the profile page could not be scraped at all.
var ErrProfileUnavailable = errors.New("profile unavailable")

const analysisPrompt = `You are a lifestyle analyst. Based on the following social media ` +
	`profile content, describe this person's lifestyle, hobbies and aesthetic in a short ` +
	`paragraph. Focus on concrete interests that could inform a gift choice.

%s`

type Service struct {
	scraper scraper.Scraper
	llm     inference.Client
}

func NewService(sc scraper.Scraper, llm inference.Client) *Service {
	return &Service{scraper: sc, llm: llm}
}

// Analyze scrapes the profile, derives the interest keyword set and asks the
// model for a free-text lifestyle analysis. A failed inference call degrades
// to an empty analysis; a failed scrape is the only hard error.
func (s *Service) Analyze(ctx context.Context, username string) (Result, error) {
	data, err := s.scraper.ScrapeProfile(ctx, username)
	if err != nil || data == nil {
		log.Printf("profile: scrape failed for %q: %v", username, err)
		return Result{}, ErrProfileUnavailable
	}

	p := fromScrape(*data)

	analysis, err := s.llm.Complete(ctx, []inference.Message{
		inference.TextMessage("user", fmt.Sprintf(analysisPrompt, summarize(p))),
	})
	if err != nil {
		log.Printf("profile: analysis call failed for %q: %v", username, err)
		analysis = ""
	}

	return Result{
		Profile:   p,
		Interests: InterestKeywords(p),
		Analysis:  strings.TrimSpace(analysis),
	}, nil
}

// fromScrape converts raw scrape data into the API profile, deriving the
// hashtag and mention lists per post.
func fromScrape(data scraper.ProfileData) Profile {
	posts := make([]Post, 0, len(data.Posts))
	for _, raw := range data.Posts {
		posts = append(posts, Post{
			URL:      raw.URL,
			ImageURL: raw.ImageURL,
			Caption:  raw.Caption,
			Likes:    raw.Likes,
			Hashtags: ExtractHashtags(raw.Caption),
			Mentions: ExtractMentions(raw.Caption),
		})
	}
	return Profile{Username: data.Username, Bio: data.Bio, Posts: posts}
}

// summarize flattens the bio and captions into the text block handed to the
// model.
func summarize(p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Username: %s\n", p.Username)
	if p.Bio != "" {
		fmt.Fprintf(&b, "Bio: %s\n", p.Bio)
	}
	for i, post := range p.Posts {
		if post.Caption == "" {
			continue
		}
		fmt.Fprintf(&b, "Post %d (%d likes): %s\n", i+1, post.Likes, post.Caption)
	}
	return b.String()
}
