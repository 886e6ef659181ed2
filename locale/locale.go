// Package locale holds the static per-language string tables and the
// keyword sets the fallback classifier matches against. This is data,
// not logic: flow and resolver behavior is language-parametric but
// language-agnostic.
package locale

// DefaultLanguage is used when a requested language has no table.
const DefaultLanguage = "en"

// Supported normalizes a language tag to one with a table.
func Supported(lang string) string {
	if _, ok := tables[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// T returns the string for key in lang, falling back to English.
func T(lang, key string) string {
	if t, ok := tables[lang]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	return tables[DefaultLanguage][key]
}

var tables = map[string]map[string]string{
	"en": {
		"welcome":            "Hello! I'm your TicketBharat assistant. How can I help you today?",
		"welcome_booking":    "Welcome to TicketBharat! Let's find the perfect event for you. Please select a state to begin.",
		"welcome_faq":        "Ask me anything about events, shows, booking, or entertainment in India!",
		"book_tickets":       "Book Tickets",
		"ask_question":       "Ask Questions",
		"select_state":       "Great! Please select a state to see available events.",
		"select_city":        "Awesome! Please select a city.",
		"select_event":       "Perfect! Here are the available events:",
		"select_date":        "Great choice! Please select a date for your visit.",
		"select_time":        "Excellent! Please select a time slot.",
		"select_quantity":    "How many tickets do you need?",
		"order_summary":      "Here is your order summary:",
		"proceed_to_payment": "Proceed to Payment",
		"payment_successful": "Payment successful! 🎉",
		"payment_cancelled":  "No problem, your order is saved. Ready when you are.",
		"ticket_issued":      "Your digital ticket is ready! Enjoy the show! 🎊",
		"no_events_found":    "No events found for this location. Try another city.",
		"switch_to_booking":  "It looks like you want to book tickets. I'll switch you to booking mode.",
	},
	"hi": {
		"welcome":            "नमस्ते! मैं TicketBharat का सहायक हूं। आज मैं आपकी कैसे मदद कर सकता हूं?",
		"welcome_booking":    "TicketBharat में आपका स्वागत है! आइए आपके लिए सही इवेंट खोजते हैं। शुरू करने के लिए कृपया एक राज्य चुनें।",
		"welcome_faq":        "भारत में इवेंट्स, शो, बुकिंग या मनोरंजन के बारे में मुझसे कुछ भी पूछें!",
		"book_tickets":       "टिकट बुक करें",
		"ask_question":       "सवाल पूछें",
		"select_state":       "बहुत बढ़िया! उपलब्ध इवेंट्स देखने के लिए कृपया एक राज्य चुनें।",
		"select_city":        "शानदार! कृपया एक शहर चुनें।",
		"select_event":       "बहुत बढ़िया! यहाँ उपलब्ध इवेंट्स हैं:",
		"select_date":        "बेहतरीन चुनाव! कृपया अपनी यात्रा के लिए एक तारीख चुनें।",
		"select_time":        "बहुत बढ़िया! कृपया एक समय चुनें।",
		"select_quantity":    "आपको कितने टिकट चाहिए?",
		"order_summary":      "यह आपके आदेश का सारांश है:",
		"proceed_to_payment": "भुगतान के लिए आगे बढ़ें",
		"payment_successful": "भुगतान सफल! 🎉",
		"payment_cancelled":  "कोई बात नहीं, आपका आदेश सुरक्षित है। जब तैयार हों तब आगे बढ़ें।",
		"ticket_issued":      "आपका डिजिटल टिकट तैयार है! शो का आनंद लें! 🎊",
		"no_events_found":    "इस स्थान के लिए कोई इवेंट नहीं मिला। दूसरा शहर आज़माएं।",
		"switch_to_booking":  "लगता है आप टिकट बुक करना चाहते हैं। मैं आपको बुकिंग मोड में ले जाता हूं।",
	},
}
