package dto

import "smartcash/internal/models"

type CreateTransactionRequest struct {
	Description   string   `json:"description"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	Category      string   `json:"category"`
	Type          string   `json:"type"`
	Notes         string   `json:"notes,omitempty"`
	Location      string   `json:"location,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type TransactionResponse struct {
	ID            string   `json:"id"`
	UserEmail     string   `json:"user_email,omitempty"`
	Description   string   `json:"description"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	Category      string   `json:"category"`
	Type          string   `json:"type"`
	Notes         string   `json:"notes,omitempty"`
	Location      string   `json:"location,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            tx.ID.String(),
		UserEmail:     tx.UserEmail,
		Description:   tx.Description,
		Amount:        tx.Amount,
		Date:          tx.Date,
		Category:      string(tx.Category),
		Type:          string(tx.Type),
		Notes:         tx.Notes,
		Location:      tx.Location,
		PaymentMethod: tx.PaymentMethod,
		Tags:          tx.Tags,
	}
	if !tx.CreatedAt.IsZero() {
		resp.CreatedAt = tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// DayGroupResponse is one calendar day of the grouped history view.
type DayGroupResponse struct {
	Date         string                `json:"date"`
	Label        string                `json:"label"`
	DailyTotal   float64               `json:"daily_total"`
	Transactions []TransactionResponse `json:"transactions"`
}

type HistoryResponse struct {
	Groups []DayGroupResponse `json:"groups"`
	Total  int                `json:"total"`
}
