package dto

import "smartcash/internal/models"

type InsightsResponse struct {
	Insights []models.AIInsight `json:"insights"`
}

type AdminSummaryResponse struct {
	Stats     models.FinancialStats `json:"stats"`
	Summaries []models.UserSummary  `json:"summaries"`
}
