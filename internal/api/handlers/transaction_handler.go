package handlers

import (
	"errors"
	"time"

	"smartcash/internal/dto"
	"smartcash/internal/service"
	"smartcash/internal/storage"
	"smartcash/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// List godoc
// @Summary List transactions
// @Description List the caller's transactions ordered by date descending
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Security Bearer
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	ident := middleware.GetIdentity(c)

	txs, err := h.txService.List(c.Context(), ident)
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

// Create godoc
// @Summary Create a transaction
// @Description Record a new income or expense entry
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction entry"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if !parseBody(c, &req) {
		return nil
	}

	ident := middleware.GetIdentity(c)

	stored, err := h.txService.Add(c.Context(), ident, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": validationMessage(err),
			})
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(stored))
}

// Delete godoc
// @Summary Delete a transaction
// @Description Delete a transaction by id
// @Tags transactions
// @Param id path string true "Transaction id"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	ident := middleware.GetIdentity(c)
	if err := h.txService.Delete(c.Context(), ident, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transação não encontrada.",
			})
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err), zap.String("id", id.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erro ao excluir: " + err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary Grouped transaction history
// @Description Transactions filtered by search/type and grouped by calendar day
// @Tags transactions
// @Produce json
// @Param search query string false "Case-insensitive substring filter"
// @Param type query string false "all | income | expense"
// @Success 200 {object} dto.HistoryResponse
// @Security Bearer
// @Router /api/v1/transactions/history [get]
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	ident := middleware.GetIdentity(c)

	txs, err := h.txService.List(c.Context(), ident)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	typeFilter := service.TypeFilter(c.Query("type", string(service.FilterAll)))
	filtered := service.FilterTransactions(txs, c.Query("search"), typeFilter, ident.Admin())
	groups := service.GroupByDate(filtered)

	now := time.Now()
	resp := dto.HistoryResponse{
		Groups: make([]dto.DayGroupResponse, 0, len(groups)),
		Total:  len(filtered),
	}
	for _, group := range groups {
		dayResp := dto.DayGroupResponse{
			Date:         group.Date,
			Label:        service.DateLabel(group.Date, now),
			DailyTotal:   group.DailyTotal,
			Transactions: make([]dto.TransactionResponse, 0, len(group.Transactions)),
		}
		for i := range group.Transactions {
			dayResp.Transactions = append(dayResp.Transactions, dto.NewTransactionResponse(&group.Transactions[i]))
		}
		resp.Groups = append(resp.Groups, dayResp)
	}

	return c.JSON(resp)
}
