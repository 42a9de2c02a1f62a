package repository

import (
	"context"

	"smartcash/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"id", "user_id", "user_email", "description", "amount",
	"to_char(date, 'YYYY-MM-DD')", "category", "type",
	"notes", "location", "payment_method", "tags", "created_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// List returns transactions ordered by date descending. When ownerID is
// nil the per-user filter is lifted (admin reads).
func (r *TransactionRepository) List(ctx context.Context, ownerID *uuid.UUID) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if ownerID != nil {
		query = query.Where(squirrel.Eq{"user_id": *ownerID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.UserEmail, &tx.Description, &tx.Amount,
			&tx.Date, &tx.Category, &tx.Type,
			&tx.Notes, &tx.Location, &tx.PaymentMethod, &tx.Tags, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// insertStatement builds the insert. Tags must never reach the driver as
// a nil slice: pgx encodes nil as SQL NULL, which the NOT NULL tags
// column rejects, so a tag-less row is sent as an empty array.
func insertStatement(tx *models.Transaction) (string, []interface{}, error) {
	tags := tx.Tags
	if tags == nil {
		tags = []string{}
	}

	return squirrel.Insert("transactions").
		Columns("id", "user_id", "user_email", "description", "amount", "date",
			"category", "type", "notes", "location", "payment_method", "tags").
		Values(tx.ID, tx.UserID, tx.UserEmail, tx.Description, tx.Amount, tx.Date,
			tx.Category, tx.Type, tx.Notes, tx.Location, tx.PaymentMethod, tags).
		Suffix("RETURNING id, user_id, user_email, description, amount, " +
			"to_char(date, 'YYYY-MM-DD'), category, type, notes, location, payment_method, tags, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Insert stores a new transaction and returns the stored row, which is
// the source of truth for the record's id and created_at.
func (r *TransactionRepository) Insert(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}

	sql, args, err := insertStatement(tx)
	if err != nil {
		return nil, err
	}

	var stored models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stored.ID, &stored.UserID, &stored.UserEmail, &stored.Description, &stored.Amount,
		&stored.Date, &stored.Category, &stored.Type,
		&stored.Notes, &stored.Location, &stored.PaymentMethod, &stored.Tags, &stored.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// Delete removes one row by id. A non-nil ownerID restricts the delete
// to that user's rows, so users cannot reach each other's records; a nil
// ownerID is the admin path. Reports pgx.ErrNoRows when nothing matched.
func (r *TransactionRepository) Delete(ctx context.Context, ownerID *uuid.UUID, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if ownerID != nil {
		query = query.Where(squirrel.Eq{"user_id": *ownerID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Count reports how many rows exist, optionally scoped to one user.
// The seed command uses it to stay idempotent.
func (r *TransactionRepository) Count(ctx context.Context, ownerID *uuid.UUID) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("transactions").
		PlaceholderFormat(squirrel.Dollar)

	if ownerID != nil {
		query = query.Where(squirrel.Eq{"user_id": *ownerID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
