package config

import "os"

// Config holds runtime settings read from the environment. DATABASE_URL and
// JWT_SECRET are read directly where they are used (main / auth handlers),
// same as the secrets handling elsewhere in the app.
type Config struct {
	Addr          string
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
	BrowserBin    string
}

func Load() Config {
	addr := os.Getenv("INSTA_GIFT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return Config{
		Addr:          addr,
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: baseURL,
		OpenAIModel:   model,
		BrowserBin:    os.Getenv("CHROME_BIN"),
	}
}
