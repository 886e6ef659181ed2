package locale

// PurchasePhrases lists the explicit purchase-intent phrases per
// language. Only these redirect a free-text question into the booking
// flow; informational questions that merely mention tickets or prices
// must not match.
func PurchasePhrases(lang string) []string {
	if p, ok := purchasePhrases[lang]; ok {
		return p
	}
	return purchasePhrases[DefaultLanguage]
}

var purchasePhrases = map[string][]string{
	"en": {
		"book ticket",
		"buy ticket",
		"purchase ticket",
		"i want to book",
		"i want to buy",
		"help me book",
	},
	"hi": {
		"टिकट बुक",
		"टिकट खरीद",
		"बुक करना चाहता",
		"बुक करना चाहती",
	},
}

// TopicGroup pairs a canned-answer key with the keywords that select
// it. Groups are matched in order; the first hit wins.
type TopicGroup struct {
	Key      string
	Keywords []string
}

// Topics returns the ordered topic keyword groups for lang.
func Topics(lang string) []TopicGroup {
	if t, ok := topicGroups[lang]; ok {
		return t
	}
	return topicGroups[DefaultLanguage]
}

var topicGroups = map[string][]TopicGroup{
	"en": {
		{Key: "faq_greeting", Keywords: []string{"hello", "hi ", "hey", "namaste"}},
		{Key: "faq_movies", Keywords: []string{"movie", "film", "cinema"}},
		{Key: "faq_concerts", Keywords: []string{"concert", "music", "singer"}},
		{Key: "faq_sports", Keywords: []string{"sports", "cricket", "football", "match"}},
		{Key: "faq_pricing", Keywords: []string{"price", "cost", "how much", "rate"}},
	},
	"hi": {
		{Key: "faq_greeting", Keywords: []string{"नमस्ते", "हैलो", "hello", "hi "}},
		{Key: "faq_movies", Keywords: []string{"फिल्म", "मूवी", "movie"}},
		{Key: "faq_concerts", Keywords: []string{"कॉन्सर्ट", "संगीत", "concert"}},
		{Key: "faq_sports", Keywords: []string{"खेल", "क्रिकेट", "फुटबॉल", "sports"}},
		{Key: "faq_pricing", Keywords: []string{"कीमत", "दाम", "price", "cost"}},
	},
}

// Canned answers for the fallback path, keyed by topic group.
func init() {
	en := tables["en"]
	en["faq_greeting"] = "Hello! I'm your TicketBharat assistant. I can provide information about movies, concerts, sports, and entertainment events. Ask me anything!"
	en["faq_movies"] = "We have Bollywood, Hollywood, and regional movies available. You can check the latest movies playing in your city. Looking for information about any specific movie?"
	en["faq_concerts"] = "We have classical music, Bollywood concerts, rock shows, and other musical events. Regular concerts happen in Delhi, Mumbai, Bangalore, and other major cities."
	en["faq_sports"] = "We have tickets for cricket matches, football games, kabaddi leagues, and other sports events. Tickets for leagues like IPL, ISL are also available."
	en["faq_pricing"] = "Ticket prices vary by event and seating. Typically, movie tickets range ₹150-500, concerts ₹500-5000, and sports events ₹300-2000."
	en["faq_default"] = "I can provide information about TicketBharat! You can ask me about movies, concerts, sports, or any entertainment events. What would you like to know?"

	hi := tables["hi"]
	hi["faq_greeting"] = "नमस्ते! मैं TicketBharat का सहायक हूं। मैं फिल्में, कॉन्सर्ट, खेल और अन्य मनोरंजन कार्यक्रमों के बारे में जानकारी दे सकता हूं। आप मुझसे कुछ भी पूछ सकते हैं!"
	hi["faq_movies"] = "हमारे पास बॉलीवुड, हॉलीवुड और क्षेत्रीय फिल्में उपलब्ध हैं। आप अपने शहर में चल रही लेटेस्ट फिल्में देख सकते हैं। कोई खास फिल्म के बारे में जानना चाहते हैं?"
	hi["faq_concerts"] = "हमारे पास शास्त्रीय संगीत, बॉलीवुड कॉन्सर्ट, रॉक शो और अन्य संगीत कार्यक्रम होते रहते हैं। दिल्ली, मुंबई, बैंगलोर में नियमित कॉन्सर्ट होते हैं।"
	hi["faq_sports"] = "हमारे पास क्रिकेट मैच, फुटबॉल गेम्स, कबड्डी लीग और अन्य खेल इवेंट्स की टिकट मिलती हैं। IPL, ISL जैसी लीग्स की टिकट भी उपलब्ध हैं।"
	hi["faq_pricing"] = "टिकट की कीमत इवेंट और सीट के हिसाब से अलग होती है। आमतौर पर फिल्म टिकट ₹150-500, कॉन्सर्ट ₹500-5000, और खेल ₹300-2000 तक होती हैं।"
	hi["faq_default"] = "मैं TicketBharat के बारे में जानकारी दे सकता हूं! आप मुझसे फिल्में, कॉन्सर्ट, खेल, या किसी भी मनोरंजन कार्यक्रम के बारे में पूछ सकते हैं। क्या आप कोई खास चीज़ जानना चाहते हैं?"
}
