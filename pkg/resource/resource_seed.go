package resource

import "Food-Sustainability-Backend/entities"

func seedResources() []*entities.Resource {
	return []*entities.Resource{
		{
			Title:       "Plan Meals Around What You Already Have",
			Description: "A short routine for checking the fridge before shopping.",
			URL:         "https://www.lovefoodhatewaste.com/",
			Category:    "waste-reduction",
			Type:        "guide",
		},
		{
			Title:       "Understanding Best Before and Use By Dates",
			Description: "How date labels differ and when food is still safe to eat.",
			URL:         "https://www.fda.gov/food/consumers/food-product-dating",
			Category:    "waste-reduction",
			Type:        "article",
		},
		{
			Title:       "Storing Fruit and Vegetables for Longer",
			Description: "Which produce belongs in the fridge and which does not.",
			URL:         "https://www.fao.org/platform-food-loss-waste/en/",
			Category:    "storage",
			Type:        "article",
		},
		{
			Title:       "Freezing Basics",
			Description: "Portioning, labelling and thawing food safely.",
			URL:         "https://www.foodsafety.gov/food-safety-charts/cold-food-storage-charts",
			Category:    "storage",
			Type:        "video",
		},
		{
			Title:       "Building a Balanced Plate",
			Description: "Proportions of vegetables, grains and proteins for everyday meals.",
			URL:         "https://www.myplate.gov/",
			Category:    "nutrition",
			Type:        "guide",
		},
		{
			Title:       "Protein on a Plant-Based Diet",
			Description: "Affordable sources of protein beyond meat.",
			URL:         "https://www.who.int/health-topics/nutrition",
			Category:    "nutrition",
			Type:        "article",
		},
		{
			Title:       "Grocery Shopping on a Budget",
			Description: "Lists, unit prices and seasonal buying.",
			URL:         "https://www.choosemyplate.gov/budget",
			Category:    "budget",
			Type:        "guide",
		},
		{
			Title:       "Cooking Once, Eating Twice",
			Description: "Batch cooking to cut cost and waste.",
			URL:         "https://www.bbcgoodfood.com/howto/guide/batch-cooking",
			Category:    "budget",
			Type:        "video",
		},
	}
}
