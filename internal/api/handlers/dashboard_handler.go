package handlers

import (
	"sort"

	"smartcash/internal/dto"
	"smartcash/internal/models"
	"smartcash/internal/service"
	"smartcash/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler serves the aggregate views: summary stats, AI
// insights, and the admin audit endpoints.
type DashboardHandler struct {
	txService      *service.TransactionService
	insightService *service.InsightService
	logger         *zap.Logger
}

// NewDashboardHandler wires the dashboard endpoints. insightService may
// be nil when no LLM credentials are configured; insights then resolve
// to an empty list.
func NewDashboardHandler(txService *service.TransactionService, insightService *service.InsightService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		txService:      txService,
		insightService: insightService,
		logger:         logger,
	}
}

// Stats godoc
// @Summary Dashboard summary stats
// @Description Totals, balance and the expense category breakdown over the caller's unfiltered list
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.FinancialStats
// @Security Bearer
// @Router /api/v1/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	ident := middleware.GetIdentity(c)

	txs, err := h.txService.ListCached(c.Context(), ident)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute stats",
		})
	}

	stats := service.Aggregate(txs)
	if ident.Admin() {
		stats.UserCount = service.CountUsers(txs)
	}

	return c.JSON(stats)
}

// Insights godoc
// @Summary AI spending insights
// @Description Structured insights generated from recent transactions; failures yield an empty list
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.InsightsResponse
// @Security Bearer
// @Router /api/v1/insights [get]
func (h *DashboardHandler) Insights(c *fiber.Ctx) error {
	ident := middleware.GetIdentity(c)

	txs, err := h.txService.ListCached(c.Context(), ident)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transactions",
		})
	}

	insights := []models.AIInsight{}
	if h.insightService != nil {
		insights = h.insightService.GetInsights(c.Context(), txs, ident.Admin())
	}

	return c.JSON(dto.InsightsResponse{Insights: insights})
}

// AdminTransactions godoc
// @Summary All users' transactions
// @Description Audit view across every user, ordered by date descending
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 403 {object} map[string]string
// @Security Bearer
// @Router /api/v1/admin/transactions [get]
func (h *DashboardHandler) AdminTransactions(c *fiber.Ctx) error {
	txs, err := h.txService.List(c.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	resp := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(txs)),
		Total:        len(txs),
	}
	for i := range txs {
		resp.Transactions = append(resp.Transactions, dto.NewTransactionResponse(&txs[i]))
	}

	return c.JSON(resp)
}

// AdminSummary godoc
// @Summary Per-user audit summary
// @Description Global stats plus per-user expense summaries, highest spender first
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminSummaryResponse
// @Failure 403 {object} map[string]string
// @Security Bearer
// @Router /api/v1/admin/summary [get]
func (h *DashboardHandler) AdminSummary(c *fiber.Ctx) error {
	txs, err := h.txService.List(c.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute summary",
		})
	}

	stats := service.Aggregate(txs)
	stats.UserCount = service.CountUsers(txs)

	summaries := service.SummarizeUsers(txs)
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSpent > summaries[j].TotalSpent
	})

	return c.JSON(dto.AdminSummaryResponse{
		Stats:     stats,
		Summaries: summaries,
	})
}
