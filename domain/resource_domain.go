package domain

const (
	MessageResourcesSeeded        = "Resources seeding completed."
	MessageResourcesAlreadySeeded = "Resources already seeded."
)

var (
	MessageSuccessCreateResource = "resource created successfully"
	MessageSuccessGetResources   = "resources retrieved successfully"
	MessageSuccessSeedResources  = "resources seed finished"

	MessageFailedCreateResource = "failed to create resource"
	MessageFailedGetResources   = "failed to retrieve resources"
	MessageFailedSeedResources  = "failed to seed resources"
)

type (
	CreateResourceRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		URL         string `json:"url" validate:"omitempty,url"`
		Category    string `json:"category" validate:"required"`
		Type        string `json:"type" validate:"required,oneof=article video guide"`
	}

	ResourceResponse struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Category    string `json:"category"`
		Type        string `json:"type"`
	}

	RecommendedResource struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Reason   string `json:"reason"`
	}
)
