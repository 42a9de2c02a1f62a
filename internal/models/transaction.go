package models

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryAlimentacao Category = "Alimentação"
	CategoryMoradia     Category = "Moradia"
	CategoryTransporte  Category = "Transporte"
	CategoryLazer       Category = "Lazer"
	CategorySaude       Category = "Saúde"
	CategoryEducacao    Category = "Educação"
	CategoryOutros      Category = "Outros"
	CategoryRenda       Category = "Renda"
)

// ExpenseCategories are the categories selectable on the entry form.
// Income entries are always recorded under CategoryRenda.
var ExpenseCategories = []Category{
	CategoryAlimentacao,
	CategoryMoradia,
	CategoryTransporte,
	CategoryLazer,
	CategorySaude,
	CategoryEducacao,
	CategoryOutros,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryAlimentacao, CategoryMoradia, CategoryTransporte, CategoryLazer,
		CategorySaude, CategoryEducacao, CategoryOutros, CategoryRenda:
		return true
	}
	return false
}

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single dated income or expense record. Date is the
// calendar day in YYYY-MM-DD form with no time component; grouping and
// ordering compare the raw string.
type Transaction struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	UserID        *uuid.UUID      `db:"user_id" json:"user_id,omitempty"`
	UserEmail     string          `db:"user_email" json:"user_email,omitempty"`
	Description   string          `db:"description" json:"description"`
	Amount        float64         `db:"amount" json:"amount"`
	Date          string          `db:"date" json:"date"`
	Category      Category        `db:"category" json:"category"`
	Type          TransactionType `db:"type" json:"type"`
	Notes         string          `db:"notes" json:"notes,omitempty"`
	Location      string          `db:"location" json:"location,omitempty"`
	PaymentMethod string          `db:"payment_method" json:"payment_method,omitempty"`
	Tags          []string        `db:"tags" json:"tags,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
