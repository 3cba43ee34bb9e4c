package gift

import (
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Model output is free text that usually contains a JSON array, wrapped in
// markdown fences, typographic quotes or stray whitespace depending on the
// model's mood. The chain below cleans the text step by step before the
// strict decode; any failure falls back to a single safe recommendation.

var (
	fenceRe       = regexp.MustCompile("```(?:json)?")
	whitespaceRe  = regexp.MustCompile(`\s+`)
	contractionRe = regexp.MustCompile(`(\pL)"(\pL)`)

	quoteReplacer = strings.NewReplacer(
		"“", `"`, // “
		"”", `"`, // ”
		"‘", "'", // ‘
		"’", "'", // ’
	)
)

// rawRecommendation matches the shape requested from the model.
type rawRecommendation struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       flexPrice `json:"price"`
	MatchReason string    `json:"matchReason"`
}

// flexPrice decodes a price that may arrive as a JSON number or as a string
// like "$24.99" or "1,200".
type flexPrice float64

func (p *flexPrice) UnmarshalJSON(data []byte) error {
	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*p = flexPrice(asNumber)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(asString)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		// unparseable price is not worth failing the whole array over
		*p = 0
		return nil
	}
	*p = flexPrice(v)
	return nil
}

// normalizeModelOutput applies the textual cleanups in a fixed order:
// fence stripping, quote unification, whitespace collapse, contraction
// re-quoting (don"t -> don't).
func normalizeModelOutput(raw string) string {
	s := fenceRe.ReplaceAllString(raw, "")
	s = quoteReplacer.Replace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = contractionRe.ReplaceAllString(s, "$1'$2")
	return strings.TrimSpace(s)
}

// extractJSONArray returns the first balanced [...] block, scanning bracket
// depth the same way the object extraction helpers elsewhere do.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// parseRecommendations turns raw model output into recommendations with
// marketplace links attached. On any failure it returns the single fallback
// recommendation priced at the requested budget.
func parseRecommendations(raw string, budget float64) []Recommendation {
	block := extractJSONArray(normalizeModelOutput(raw))
	if block == "" {
		log.Printf("gift: no JSON array in model output")
		return []Recommendation{fallbackRecommendation(budget)}
	}

	var parsed []rawRecommendation
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		log.Printf("gift: could not decode recommendations: %v", err)
		return []Recommendation{fallbackRecommendation(budget)}
	}

	out := make([]Recommendation, 0, len(parsed))
	for _, r := range parsed {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		rec := Recommendation{
			Name:        strings.TrimSpace(r.Name),
			Description: strings.TrimSpace(r.Description),
			Price:       float64(r.Price),
			MatchReason: strings.TrimSpace(r.MatchReason),
		}
		rec.AmazonLink, rec.EtsyLink = marketplaceLinks(rec.Name)
		out = append(out, rec)
	}
	if len(out) == 0 {
		return []Recommendation{fallbackRecommendation(budget)}
	}
	return out
}

// fallbackRecommendation is returned whenever the model's answer cannot be
// parsed. It is priced at the caller's budget so it always fits.
func fallbackRecommendation(budget float64) Recommendation {
	rec := Recommendation{
		Name:        "Gift Card",
		Description: "A versatile gift card they can spend on whatever they like best.",
		Price:       budget,
		MatchReason: "A safe pick when we could not read enough detail from the profile.",
	}
	rec.AmazonLink, rec.EtsyLink = marketplaceLinks(rec.Name)
	return rec
}
