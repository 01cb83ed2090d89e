package parser

import "fmt"

func getIntentExtractionPrompt(query string) string {
	return fmt.Sprintf(`You are a travel assistant. Extract the place name and intent from this user query: "%s"

Return ONLY a JSON object with this exact format:
{
  "placeName": "extracted place name (capitalize properly)",
  "intent": "weather" or "places" or "both" or "full",
  "confidence": 0.0 to 1.0
}

Intent rules:
- "weather": user only asks about temperature/weather
- "places": user only asks about places/attractions to visit
- "both": user asks about both weather AND places
- "full": user wants to plan a trip or asks for comprehensive planning

Examples:
- "I'm going to Bangalore, what is the temperature there" → {"placeName": "Bangalore", "intent": "weather", "confidence": 0.95}
- "I'm going to go to Bangalore, let's plan my trip" → {"placeName": "Bangalore", "intent": "full", "confidence": 0.95}
- "What places can I visit in Paris?" → {"placeName": "Paris", "intent": "places", "confidence": 0.9}

Return ONLY the JSON, no other text.`, query)
}
