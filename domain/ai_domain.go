package domain

import "encoding/json"

var (
	MessageSuccessAnalyzeImage = "image analyzed successfully"
	MessageSuccessMealPlan     = "meal plan generated successfully"
	MessageSuccessInsights     = "sustainability insights generated successfully"
	MessageSuccessChat         = "reply generated successfully"

	MessageFailedAnalyzeImage = "failed to analyze image"
	MessageFailedMealPlan     = "failed to generate meal plan"
	MessageFailedInsights     = "failed to generate insights"
	MessageFailedChat         = "failed to generate reply"

	ChatFallbackReply = "I'm having trouble connecting to the sustainability network right now. Please try again."
)

type (
	// ProposedItem is an untrusted guess from the AI collaborator; every
	// field may be empty or malformed.
	ProposedItem struct {
		Name       string   `json:"name"`
		Quantity   Quantity `json:"quantity"`
		ExpiryDate string   `json:"expiryDate"`
		Category   string   `json:"category"`
	}

	Meal struct {
		Type           string   `json:"type"`
		Name           string   `json:"name"`
		Ingredients    []string `json:"ingredients"`
		CostEstimate   float64  `json:"costEstimate"`
		NutritionFocus string   `json:"nutritionFocus"`
	}

	MealPlanDay struct {
		Day   string `json:"day"`
		Meals []Meal `json:"meals"`
	}

	WeeklyTrend struct {
		Day         string  `json:"day"`
		Consumption float64 `json:"consumption"`
		Waste       float64 `json:"waste"`
	}

	CategoryShare struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	SustainabilityMetrics struct {
		SDGScore          float64         `json:"sdgScore"`
		WasteProjectionKg float64         `json:"wasteProjectionKg"`
		MoneySaved        float64         `json:"moneySaved"`
		Suggestions       []string        `json:"suggestions"`
		WeeklyTrends      []WeeklyTrend   `json:"weeklyTrends"`
		CategoryBreakdown []CategoryShare `json:"categoryBreakdown"`
	}

	ChatTurn struct {
		Role string `json:"role" validate:"required,oneof=user model"`
		Text string `json:"text" validate:"required"`
	}

	MealPlanRequest struct {
		Budget float64 `json:"budget" validate:"gte=0"`
	}

	ChatRequest struct {
		History []ChatTurn `json:"history" validate:"omitempty,dive"`
		Message string     `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)

// Quantity holds the AI's quantity text. Replies sometimes carry a bare
// number instead of a string, so both are accepted; anything else is empty.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = Quantity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*q = Quantity(n.String())
		return nil
	}

	*q = ""
	return nil
}

// FallbackMetrics is returned when the insights call cannot be completed.
func FallbackMetrics() SustainabilityMetrics {
	return SustainabilityMetrics{
		SDGScore:          72,
		WasteProjectionKg: 0.5,
		MoneySaved:        45,
		Suggestions: []string{
			"Eat the strawberries before Tuesday.",
			"You are low on Proteins this week.",
			"Freeze the leftover bread.",
		},
		WeeklyTrends:      []WeeklyTrend{},
		CategoryBreakdown: []CategoryShare{},
	}
}
