package profile

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cdirks4/insta-gift/internal/inference"
	"github.com/cdirks4/insta-gift/internal/scraper"
)

type fakeScraper struct {
	data *scraper.ProfileData
	err  error
}

func (f *fakeScraper) ScrapeProfile(ctx context.Context, username string) (*scraper.ProfileData, error) {
	return f.data, f.err
}

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Complete(ctx context.Context, messages []inference.Message) (string, error) {
	return f.reply, f.err
}

func newTestApp(sc scraper.Scraper, llm inference.Client) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(sc, llm), nil).RegisterPublicRoutes(app)
	return app
}

func postJSON(app *fiber.App, body string) (int, string, error) {
	req := httptest.NewRequest("POST", "/api/v1/profile-analysis", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		return 0, "", err
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b), nil
}

func TestAnalyzeProfile_MissingUsername(t *testing.T) {
	app := newTestApp(&fakeScraper{}, &fakeLLM{})

	status, _, err := postJSON(app, `{"username":""}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing username, got %d", status)
	}
}

func TestAnalyzeProfile_ScrapeFailure(t *testing.T) {
	app := newTestApp(&fakeScraper{err: errors.New("page did not load")}, &fakeLLM{})

	status, _, err := postJSON(app, `{"username":"ghost"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 when scraping fails, got %d", status)
	}
}

func TestAnalyzeProfile_Success(t *testing.T) {
	sc := &fakeScraper{data: &scraper.ProfileData{
		Username: "jane",
		Bio:      "plant collector and trail runner",
		Posts: []scraper.Post{
			{Caption: "repotting day #plants #monstera", Likes: 42, ImageURL: "https://cdn.example/p1.jpg"},
			{Caption: "morning run with @ada", Likes: 17},
		},
	}}
	app := newTestApp(sc, &fakeLLM{reply: "Loves greenery and running outdoors."})

	status, body, err := postJSON(app, `{"username":"@jane"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var result Result
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if result.Profile.Username != "jane" {
		t.Fatalf("unexpected username %q", result.Profile.Username)
	}
	if result.Analysis != "Loves greenery and running outdoors." {
		t.Fatalf("unexpected analysis %q", result.Analysis)
	}
	if len(result.Profile.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(result.Profile.Posts))
	}
	if got := result.Profile.Posts[0].Hashtags; len(got) != 2 || got[0] != "plants" || got[1] != "monstera" {
		t.Fatalf("unexpected hashtags %v", got)
	}
	if got := result.Profile.Posts[1].Mentions; len(got) != 1 || got[0] != "ada" {
		t.Fatalf("unexpected mentions %v", got)
	}
	if !contains(result.Interests, "plants") || !contains(result.Interests, "runner") {
		t.Fatalf("interests missing expected keywords: %v", result.Interests)
	}
	if contains(result.Interests, "day") || contains(result.Interests, "run") {
		t.Fatalf("short words leaked into interests: %v", result.Interests)
	}
}

func TestAnalyzeProfile_DegradesWhenInferenceFails(t *testing.T) {
	sc := &fakeScraper{data: &scraper.ProfileData{
		Username: "jane",
		Posts:    []scraper.Post{{Caption: "baking sourdough #bread"}},
	}}
	app := newTestApp(sc, &fakeLLM{err: errors.New("api down")})

	status, body, err := postJSON(app, `{"username":"jane"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != fiber.StatusOK {
		t.Fatalf("inference failure must not fail the request, got %d", status)
	}

	var result Result
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if result.Analysis != "" {
		t.Fatalf("expected empty analysis on inference failure, got %q", result.Analysis)
	}
	if !contains(result.Interests, "bread") {
		t.Fatalf("interests should still be derived: %v", result.Interests)
	}
}
