package gift

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cdirks4/insta-gift/internal/inference"
)

const recommendationCount = 5

const imageAnalysisPrompt = `You are a lifestyle analyst. Look at this photo and describe ` +
	`the person's apparent lifestyle, style and interests in a short paragraph, focusing ` +
	`on details that could inform a gift choice.`

const recommendPromptTemplate = `Suggest %d gift ideas for a %d year old with a budget of ` +
	`$%.2f per gift.%s

Respond with ONLY a JSON array of exactly %d objects, each with these fields:
"name" (string), "description" (string), "price" (number, at most the budget), ` +
	`"matchReason" (string explaining why it fits this person).`

type Service struct {
	llm inference.Client
}

func NewService(llm inference.Client) *Service {
	return &Service{llm: llm}
}

// Recommend runs the two-call pipeline: an optional vision analysis of the
// uploaded photo, then the recommendation request. Both calls degrade on
// failure; the worst case is the fallback recommendation at the budget.
func (s *Service) Recommend(ctx context.Context, age int, budget float64, imageDataURL string) ([]Recommendation, string) {
	analysis := ""
	if imageDataURL != "" {
		reply, err := s.llm.Complete(ctx, []inference.Message{
			inference.VisionMessage(imageAnalysisPrompt, imageDataURL),
		})
		if err != nil {
			log.Printf("gift: image analysis failed: %v", err)
		} else {
			analysis = strings.TrimSpace(reply)
		}
	}

	analysisClause := ""
	if analysis != "" {
		analysisClause = " Their lifestyle analysis: " + analysis
	}
	prompt := fmt.Sprintf(recommendPromptTemplate, recommendationCount, age, budget, analysisClause, recommendationCount)

	reply, err := s.llm.Complete(ctx, []inference.Message{inference.TextMessage("user", prompt)})
	if err != nil {
		log.Printf("gift: recommendation call failed: %v", err)
		return []Recommendation{fallbackRecommendation(budget)}, analysis
	}

	return parseRecommendations(reply, budget), analysis
}
