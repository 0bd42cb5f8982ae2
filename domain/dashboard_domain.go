package domain

var (
	MessageSuccessGetDashboard = "dashboard retrieved successfully"
	MessageFailedGetDashboard  = "failed to retrieve dashboard"
)

type (
	InventorySummary struct {
		TotalItems   int `json:"total_items"`
		ExpiringSoon int `json:"expiring_soon"`
	}

	DashboardResponse struct {
		Profile              UserProfile           `json:"profile"`
		InventorySummary     InventorySummary      `json:"inventory_summary"`
		RecentLogs           []FoodLogResponse     `json:"recent_logs"`
		RecommendedResources []RecommendedResource `json:"recommended_resources"`
	}
)
