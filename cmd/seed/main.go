package main

import (
	"context"
	"flag"
	"log"

	"smartcash/internal/models"
	"smartcash/internal/storage"
	"smartcash/pkg/config"
	"smartcash/pkg/logger"

	"go.uber.org/zap"
)

// demoTransactions is the canonical demo dataset loaded into a fresh
// backend.
var demoTransactions = []models.Transaction{
	{Description: "Salário Mensal", Amount: 5000, Date: "2024-05-05", Category: models.CategoryRenda, Type: models.TypeIncome},
	{Description: "Aluguel", Amount: 1500, Date: "2024-05-10", Category: models.CategoryMoradia, Type: models.TypeExpense},
	{Description: "Supermercado", Amount: 450.50, Date: "2024-05-12", Category: models.CategoryAlimentacao, Type: models.TypeExpense},
	{Description: "Combustível", Amount: 200, Date: "2024-05-15", Category: models.CategoryTransporte, Type: models.TypeExpense},
	{Description: "Restaurante Japa", Amount: 120, Date: "2024-05-18", Category: models.CategoryLazer, Type: models.TypeExpense},
}

func main() {
	var (
		email   = flag.String("email", "", "attribute seeded rows to this account (postgres backend)")
		promote = flag.String("promote", "", "grant the admin capability to this account")
		secret  = flag.String("secret", "", "promotion secret (must match ADMIN_PROMOTE_SECRET)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	backend, err := storage.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer backend.Cleanup()

	if *promote != "" {
		promoteAdmin(ctx, backend, cfg, *promote, *secret, appLogger)
		return
	}

	appLogger.Info("Seeding demo transactions", zap.String("backend", cfg.Storage.Backend))

	ident := models.Guest()
	if *email != "" {
		if backend.Users == nil {
			appLogger.Fatal("--email requires the postgres backend")
		}
		user, err := backend.Users.GetByEmail(ctx, *email)
		if err != nil {
			appLogger.Fatal("Account not found", zap.String("email", *email), zap.Error(err))
		}
		ident = models.Identity{Kind: models.IdentityUser, UserID: user.ID, Email: user.Email}
	}

	existing, err := backend.Store.List(ctx, ident)
	if err != nil {
		appLogger.Fatal("Failed to read backend", zap.Error(err))
	}
	if len(existing) > 0 {
		appLogger.Info("Backend already has transactions, nothing to do",
			zap.Int("count", len(existing)))
		return
	}

	if backend.Local != nil {
		// Record the mock session slot so local-login mode has an owner.
		sess := &storage.LocalSession{Email: ident.Email, Username: "demo"}
		if err := backend.Local.SaveSession(sess); err != nil {
			appLogger.Warn("Failed to write mock session slot", zap.Error(err))
		}
	}

	for _, tx := range demoTransactions {
		tx.UserID = ident.OwnerID()
		tx.UserEmail = ident.Email
		if _, err := backend.Store.Insert(ctx, &tx); err != nil {
			appLogger.Fatal("Failed to insert demo transaction",
				zap.String("description", tx.Description), zap.Error(err))
		}
	}

	appLogger.Info("Seeding completed", zap.Int("count", len(demoTransactions)))
}

func promoteAdmin(ctx context.Context, backend *storage.Result, cfg *config.Config, email, secret string, appLogger *zap.Logger) {
	if backend.Users == nil {
		appLogger.Fatal("--promote requires the postgres backend")
	}
	if cfg.Admin.PromoteSecret == "" || secret != cfg.Admin.PromoteSecret {
		appLogger.Fatal("Promotion secret mismatch")
	}

	if err := backend.Users.SetAdmin(ctx, email, true); err != nil {
		appLogger.Fatal("Failed to promote account", zap.String("email", email), zap.Error(err))
	}

	appLogger.Info("Account promoted to admin", zap.String("email", email))
}
