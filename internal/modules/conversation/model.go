// README: Slot-filling questionnaire definition for the trip conversation.
package conversation

// DefaultUserID is used when a client does not identify itself.
const DefaultUserID = "default_user"

// apologyReply substitutes the final AI answer when the dispatch call fails.
const apologyReply = "Sorry, I couldn't generate the itinerary at this time."

type slotQuestion struct {
	slot     string
	question string
}

// conversationQuestions is the fixed, ordered slot list. The order drives
// both answer merging and which question is asked next.
var conversationQuestions = []slotQuestion{
	{"day", "Which day are you planning your tour?"},
	{"location", "Which city/country/region do you want to visit?"},
	{"date", "What are your preferred travel dates?"},
	{"travel_style", "Are you looking for luxury, mid-range, or budget travel?"},
	{"budget", "Approximate budget per person (including accommodation, food, transport, activities)?"},
	{"accommodation", "Do you prefer hotels, hostels, resorts, or homestays?"},
	{"activities", "What kind of experiences are you interested in? (nature, adventure, cultural experiences, shopping, nightlife)"},
	{"transportation", "How do you prefer to travel locally? (rental car, public transport, walking, bike)"},
	{"dining", "Do you have any dietary restrictions or food interests?"},
	{"special_requests", "Any special requests, accessibility needs, or events you want included?"},
}

// SlotCount is the number of answers needed before the AI call is dispatched.
func SlotCount() int {
	return len(conversationQuestions)
}
