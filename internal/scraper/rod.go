package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	maxPosts    = 6
	readyWait   = 2500 * time.Millisecond
	pageTimeout = 30 * time.Second
)

// RodScraper drives a headless Chromium via go-rod. The browser is launched
// and closed per call; single-shot requests don't warrant a pool.
type RodScraper struct {
	bin string // optional chromium binary path, launcher default when empty
}

func NewRodScraper(bin string) *RodScraper {
	return &RodScraper{bin: bin}
}

func (s *RodScraper) ScrapeProfile(ctx context.Context, username string) (*ProfileData, error) {
	l := launcher.New().Headless(true)
	if s.bin != "" {
		l = l.Bin(s.bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	profileURL := "https://www.instagram.com/" + username + "/"
	page, err := browser.Page(proto.TargetCreateTarget{URL: profileURL})
	if err != nil {
		return nil, fmt.Errorf("open profile page: %w", err)
	}
	page = page.Timeout(pageTimeout)
	_ = page.WaitLoad()
	time.Sleep(readyWait)

	bio := extractBio(page)

	links, err := extractPostLinks(page, maxPosts)
	if err != nil {
		return nil, fmt.Errorf("extract post links: %w", err)
	}

	posts := make([]Post, 0, len(links))
	for _, link := range links {
		post, err := s.scrapePost(browser, link)
		if err != nil {
			log.Printf("scraper: skipping post %s: %v", link, err)
			continue
		}
		posts = append(posts, post)
	}

	return &ProfileData{Username: username, Bio: bio, Posts: posts}, nil
}

// scrapePost opens a single post page and reads its og: meta tags.
func (s *RodScraper) scrapePost(browser *rod.Browser, link string) (Post, error) {
	page, err := browser.Page(proto.TargetCreateTarget{URL: link})
	if err != nil {
		return Post{}, fmt.Errorf("open post page: %w", err)
	}
	defer page.Close()
	page = page.Timeout(pageTimeout)
	_ = page.WaitLoad()

	res, err := page.Eval(`() => JSON.stringify({
		title: document.querySelector('meta[property="og:title"]')?.content || '',
		image: document.querySelector('meta[property="og:image"]')?.content || '',
		desc: document.querySelector('meta[property="og:description"]')?.content || ''
	})`)
	if err != nil {
		return Post{}, fmt.Errorf("read post meta: %w", err)
	}

	var meta struct {
		Title string `json:"title"`
		Image string `json:"image"`
		Desc  string `json:"desc"`
	}
	if err := json.Unmarshal([]byte(res.Value.Str()), &meta); err != nil {
		return Post{}, fmt.Errorf("decode post meta: %w", err)
	}

	return Post{
		URL:      link,
		ImageURL: meta.Image,
		Caption:  parseCaption(meta.Title),
		Likes:    parseLikes(meta.Desc),
	}, nil
}

func extractPostLinks(page *rod.Page, limit int) ([]string, error) {
	res, err := page.Eval(fmt.Sprintf(`() => {
		const seen = new Set();
		const out = [];
		for (const a of document.querySelectorAll('a[href*="/p/"]')) {
			if (out.length >= %d) break;
			if (!seen.has(a.href)) { seen.add(a.href); out.push(a.href); }
		}
		return JSON.stringify(out);
	}`, limit))
	if err != nil {
		return nil, err
	}
	var links []string
	if err := json.Unmarshal([]byte(res.Value.Str()), &links); err != nil {
		return nil, err
	}
	return links, nil
}

// extractBio reads the biography from the profile header, falling back to the
// page's description meta tag. Failure yields "" rather than an error; a
// profile without a readable bio is still useful.
func extractBio(page *rod.Page) string {
	res, err := page.Eval(`() => {
		const header = document.querySelector('header section');
		if (header) {
			const spans = header.querySelectorAll('span');
			for (const s of spans) {
				const text = s.innerText ? s.innerText.trim() : '';
				if (text.length > 20) return text;
			}
		}
		return document.querySelector('meta[name="description"]')?.content || '';
	}`)
	if err != nil {
		log.Printf("scraper: bio extraction failed: %v", err)
		return ""
	}
	return res.Value.Str()
}
