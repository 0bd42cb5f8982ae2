package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/utils"

	"go.uber.org/zap"
)

const chatSystemInstruction = "You are NourishBot, a sustainability assistant focused on SDG 2 (Zero Hunger) and SDG 12 (Responsible Consumption). " +
	"Help the user with recipes for leftovers, understanding expiry dates, and food sharing tips. Be encouraging and concise."

type (
	// GeminiService wraps the generative model. Every call is a single
	// attempt; failures are logged and replaced by an empty or default
	// result.
	GeminiService interface {
		AnalyzeInventoryImage(ctx context.Context, image []byte, mimeType string) []domain.ProposedItem
		GenerateMealPlan(ctx context.Context, inventory []domain.InventoryItemResponse, budget float64) []domain.MealPlanDay
		SustainabilityInsights(ctx context.Context, inventory []domain.InventoryItemResponse, logs []domain.FoodLogResponse) domain.SustainabilityMetrics
		Chat(ctx context.Context, history []domain.ChatTurn, message string) string
	}

	geminiService struct {
		client *client
		clock  utils.Clock
	}
)

func NewGeminiService(cfg utils.Config, clock utils.Clock) GeminiService {
	return &geminiService{
		client: newClient(cfg),
		clock:  clock,
	}
}

func (s *geminiService) AnalyzeInventoryImage(ctx context.Context, image []byte, mimeType string) []domain.ProposedItem {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	prompt := fmt.Sprintf("Analyze this image of food. Today is %s. Return a JSON array of items detected. "+
		"For each item, estimate the name, quantity (e.g., '2 count', '500g'), and a likely expiration date from today (YYYY-MM-DD) "+
		"based on the type of food (e.g., fresh berries expire fast, canned goods slow). Also categorize them.",
		s.clock.Now().Format("2006-01-02"))

	body := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
				{Text: prompt},
			},
		}},
		GenerationConfig: jsonConfig(arrayOf(objectOf(map[string]any{
			"name":       stringType,
			"quantity":   stringType,
			"expiryDate": stringType,
			"category":   stringType,
		}))),
	}

	var items []domain.ProposedItem
	if err := s.client.generateJSON(ctx, body, &items); err != nil {
		zap.L().Warn("gemini image analysis failed", zap.Error(err))
		return []domain.ProposedItem{}
	}
	if items == nil {
		items = []domain.ProposedItem{}
	}
	return items
}

func (s *geminiService) GenerateMealPlan(ctx context.Context, inventory []domain.InventoryItemResponse, budget float64) []domain.MealPlanDay {
	list := make([]string, 0, len(inventory))
	for _, item := range inventory {
		list = append(list, fmt.Sprintf("%g of %s (Expires: %s)", item.Quantity, itemName(item), expiryString(item)))
	}

	prompt := fmt.Sprintf("Create a 7-day meal plan. Current Inventory: [%s]. Weekly Budget remaining: $%.2f. "+
		"Prioritize using items expiring soon. Optimize for nutrition (SDG 2) and zero waste (SDG 12). Return a JSON array of days.",
		strings.Join(list, ", "), budget)

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: jsonConfig(arrayOf(objectOf(map[string]any{
			"day": stringType,
			"meals": arrayOf(objectOf(map[string]any{
				"type":           stringType,
				"name":           stringType,
				"ingredients":    arrayOf(stringType),
				"costEstimate":   numberType,
				"nutritionFocus": stringType,
			})),
		}))),
	}

	var days []domain.MealPlanDay
	if err := s.client.generateJSON(ctx, body, &days); err != nil {
		zap.L().Warn("gemini meal plan failed", zap.Error(err))
		return []domain.MealPlanDay{}
	}
	if days == nil {
		days = []domain.MealPlanDay{}
	}
	return days
}

func (s *geminiService) SustainabilityInsights(ctx context.Context, inventory []domain.InventoryItemResponse, logs []domain.FoodLogResponse) domain.SustainabilityMetrics {
	type shortItem struct {
		N string `json:"n"`
		E string `json:"e"`
	}
	short := make([]shortItem, 0, len(inventory))
	for _, item := range inventory {
		short = append(short, shortItem{N: itemName(item), E: expiryString(item)})
	}
	inventoryJSON, _ := json.Marshal(short)
	logsJSON, _ := json.Marshal(logs)

	prompt := fmt.Sprintf(`Analyze these consumption patterns and current inventory for SDG 12 (Responsible Consumption).
Inventory: %s
Past History: %s

1. Calculate an SDG Score (0-100) based on waste efficiency and nutritional diversity.
2. Project waste in kg for next week.
3. Estimate money saved by home cooking vs eating out based on this data.
4. Provide 3 actionable suggestions.
5. Generate weekly trend data (last 7 days) and category breakdown.`, inventoryJSON, logsJSON)

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: jsonConfig(objectOf(map[string]any{
			"sdgScore":          numberType,
			"wasteProjectionKg": numberType,
			"moneySaved":        numberType,
			"suggestions":       arrayOf(stringType),
			"weeklyTrends": arrayOf(objectOf(map[string]any{
				"day":         stringType,
				"consumption": numberType,
				"waste":       numberType,
			})),
			"categoryBreakdown": arrayOf(objectOf(map[string]any{
				"name":  stringType,
				"value": numberType,
			})),
		})),
	}

	var metrics domain.SustainabilityMetrics
	if err := s.client.generateJSON(ctx, body, &metrics); err != nil {
		zap.L().Warn("gemini insights failed", zap.Error(err))
		return domain.FallbackMetrics()
	}
	if metrics.Suggestions == nil {
		metrics.Suggestions = []string{}
	}
	if metrics.WeeklyTrends == nil {
		metrics.WeeklyTrends = []domain.WeeklyTrend{}
	}
	if metrics.CategoryBreakdown == nil {
		metrics.CategoryBreakdown = []domain.CategoryShare{}
	}
	return metrics
}

func (s *geminiService) Chat(ctx context.Context, history []domain.ChatTurn, message string) string {
	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, content{Role: turn.Role, Parts: []part{{Text: turn.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	reply, err := s.client.generate(ctx, generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: chatSystemInstruction}}},
		Contents:          contents,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		zap.L().Warn("gemini chat failed", zap.Error(err))
		return domain.ChatFallbackReply
	}
	return reply
}

func itemName(item domain.InventoryItemResponse) string {
	if item.Item == nil {
		return domain.UnknownItemName
	}
	return item.Item.Name
}

func expiryString(item domain.InventoryItemResponse) string {
	if item.ExpiryDate == nil {
		return "unknown"
	}
	return item.ExpiryDate.Format("2006-01-02")
}
