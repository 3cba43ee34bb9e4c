package inference

import (
	"context"
	"errors"
)

var (
	// ErrNoAPIKey is returned when the client is constructed without a key.
	ErrNoAPIKey = errors.New("inference: API key not configured")
	// ErrEmptyCompletion is returned when the API answers with no choices.
	ErrEmptyCompletion = errors.New("inference: empty completion")
)

// Client is the narrow surface the handlers depend on. Services treat every
// failure from Complete as "no analysis available" and degrade, so fakes in
// tests only need to return canned strings or errors.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Message is a chat-completion message. Content is a list of parts so the
// same type covers plain text and vision (image data URL) requests.
type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) Message {
	return Message{
		Role:    role,
		Content: []ContentPart{{Type: "text", Text: text}},
	}
}

// VisionMessage builds a user message carrying a prompt and an image data URL.
func VisionMessage(prompt, dataURL string) Message {
	return Message{
		Role: "user",
		Content: []ContentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageURL: &ImageURL{URL: dataURL}},
		},
	}
}
