// File: services/intelligence/resolver.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ticketbharat/catalog"
	"ticketbharat/locale"
	"ticketbharat/models"

	"go.uber.org/zap"
)

// Generator is the external text-generation boundary. GeminiClient
// satisfies it; tests substitute their own.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// FaqResolver answers free-text questions. Resolve always returns a
// well-formed outcome: the local fallback is the error boundary for the
// whole path, so external failures never reach the caller.
type FaqResolver interface {
	Resolve(ctx context.Context, question, lang string) models.FaqOutcome
}

// No timeout is inherent to the generation call; 8s keeps the busy
// indicator bounded without cutting off slow generations.
const generateTimeout = 8 * time.Second

type DefaultFaqResolver struct {
	generator Generator // nil when no API key is configured
	catalog   catalog.Provider
	logger    *zap.Logger
}

func NewDefaultFaqResolver(generator Generator, cat catalog.Provider, logger *zap.Logger) *DefaultFaqResolver {
	return &DefaultFaqResolver{
		generator: generator,
		catalog:   cat,
		logger:    logger,
	}
}

// geminiOutcome is the structured shape the prompt constrains the model
// to emit. The structured form replaces the sentinel-string contract:
// matching a bare sentinel is ambiguous whenever it could plausibly be
// natural-language output.
type geminiOutcome struct {
	Answer string `json:"answer"`
	Intent string `json:"intent"`
}

func (r *DefaultFaqResolver) Resolve(ctx context.Context, question, lang string) models.FaqOutcome {
	lang = locale.Supported(lang)

	if r.generator == nil {
		return Fallback(question, lang)
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := r.generator.GenerateContent(ctx, r.buildPrompt(question, lang))
	if err != nil {
		r.logger.Warn("FAQ generation failed, using local fallback",
			zap.Error(err), zap.String("lang", lang))
		return Fallback(question, lang)
	}

	outcome, ok := parseOutcome(raw)
	if !ok {
		r.logger.Warn("FAQ generation unparseable, using local fallback",
			zap.String("lang", lang))
		return Fallback(question, lang)
	}

	if outcome.Intent == models.IntentSwitchToBooking && outcome.Answer == "" {
		outcome.Answer = locale.T(lang, "switch_to_booking")
	}
	return outcome
}

// parseOutcome normalizes the service response into the outcome sum
// type at the boundary, so nothing downstream inspects raw shapes.
func parseOutcome(raw string) (models.FaqOutcome, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return models.FaqOutcome{}, false
	}

	var out geminiOutcome
	if err := json.Unmarshal([]byte(raw[start:end+1]), &out); err != nil {
		return models.FaqOutcome{}, false
	}

	switch models.FaqIntent(out.Intent) {
	case models.IntentSwitchToBooking:
		return models.FaqOutcome{Intent: models.IntentSwitchToBooking, Answer: out.Answer}, true
	case models.IntentAnswer:
		if strings.TrimSpace(out.Answer) == "" {
			return models.FaqOutcome{}, false
		}
		return models.FaqOutcome{Intent: models.IntentAnswer, Answer: out.Answer}, true
	default:
		return models.FaqOutcome{}, false
	}
}

func (r *DefaultFaqResolver) buildPrompt(question, lang string) string {
	var sb strings.Builder
	sb.WriteString(`You are a helpful assistant for TicketBharat, India's premier event ticketing platform. You help users with information about events, shows, concerts, movies, sports, and cultural events across India.

Currently listed events:
`)
	for _, state := range r.catalog.States() {
		for _, e := range r.catalog.EventsByStateAndCity(state, "") {
			fmt.Fprintf(&sb, "- %s (%s) at %s, %s, %s; dates %s; from ₹%.0f\n",
				e.Name, e.Category, e.Venue, e.City, e.State,
				strings.Join(e.Dates, ", "), minPrice(e.Prices))
		}
	}

	sb.WriteString(`
Respond ONLY with a JSON object of the form {"answer": "...", "intent": "ANSWER"} or {"answer": "...", "intent": "SWITCH_TO_BOOKING"}.

Use intent SWITCH_TO_BOOKING only if the user explicitly wants to book, purchase, or buy tickets, for example "I want to book tickets", "Book tickets for me", "Purchase tickets", "Help me book". For every informational question, including questions about prices, showtimes or what is playing, use intent ANSWER.

Answer naturally and conversationally, grounded in the listed events where relevant. Be culturally aware and mention Indian context when relevant. Answer in the same language as the question.

`)
	fmt.Fprintf(&sb, "Question: %s\nLanguage: %s\n", question, lang)
	return sb.String()
}

func minPrice(prices map[string]float64) float64 {
	first := true
	min := 0.0
	for _, p := range prices {
		if first || p < min {
			min = p
			first = false
		}
	}
	return min
}
