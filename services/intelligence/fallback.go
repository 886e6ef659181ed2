package ai

import (
	"strings"

	"ticketbharat/locale"
	"ticketbharat/models"
)

// Fallback classifies a question locally when the generation service is
// unavailable or returned garbage. Purchase-intent phrases are checked
// before topic keywords, so a pricing or listing question that merely
// mentions tickets never redirects into the booking flow. Never fails.
func Fallback(question, lang string) models.FaqOutcome {
	lang = locale.Supported(lang)
	// Pad with spaces so word-boundary keywords like "hi " match at the
	// end of the text too.
	q := " " + strings.ToLower(question) + " "

	for _, phrase := range locale.PurchasePhrases(lang) {
		if strings.Contains(q, phrase) {
			return models.FaqOutcome{
				Intent: models.IntentSwitchToBooking,
				Answer: locale.T(lang, "switch_to_booking"),
			}
		}
	}

	for _, group := range locale.Topics(lang) {
		for _, kw := range group.Keywords {
			if strings.Contains(q, kw) {
				return models.FaqOutcome{
					Intent: models.IntentAnswer,
					Answer: locale.T(lang, group.Key),
				}
			}
		}
	}

	return models.FaqOutcome{
		Intent: models.IntentAnswer,
		Answer: locale.T(lang, "faq_default"),
	}
}
