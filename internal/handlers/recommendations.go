package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Recommendation struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var recommendations = []Recommendation{
	{
		ID:          1,
		Title:       "Link GitHub accounts",
		Description: "Add a GitHub username to every member so project repositories can be cross-referenced.",
		Category:    "onboarding",
	},
	{
		ID:          2,
		Title:       "Review inactive members",
		Description: "Members marked inactive for over a quarter should be removed from their projects.",
		Category:    "housekeeping",
	},
	{
		ID:          3,
		Title:       "Keep project statuses current",
		Description: "Mark shipped projects as completed so the dashboard reflects actual workload.",
		Category:    "process",
	},
	{
		ID:          4,
		Title:       "Document repository conventions",
		Description: "Every project should point at a repository with a README covering setup and ownership.",
		Category:    "documentation",
	},
}

// Recommendations serves the static list shown on the landing page. No gate,
// no store access.
func Recommendations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "recommendations": recommendations})
}
