// Package main provides a CLI tool for seeding the database with the initial
// operator account, the default allocation accounts and optional demo stock.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"traso/internal/core/id"
	"traso/internal/core/types"
	"traso/internal/infrastructure/storage/postgres"
	"traso/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if err := seedFundAccounts(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed fund accounts", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoItems(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo items", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM sys_users WHERE username = $1`,
		username,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "username", username, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO sys_users (
			id, username, password_hash, display_name,
			is_active, failed_login_attempts, created_at, updated_at, version
		)
		VALUES ($1, $2, $3, 'Quản lý', true, 0, now(), now(), 1)
	`, userID, username, string(passwordHash))
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "username", username, "user_id", userID)
	return nil
}

// seedFundAccounts inserts the default allocation scheme. Dividends and
// marketing stay outside the reserve rollup.
func seedFundAccounts(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	accounts := []struct {
		name           string
		description    string
		percentage     types.Percent
		includeReserve bool
	}{
		{"Quỹ dự phòng", "Dự phòng vận hành", types.MustMoney("25"), true},
		{"Quỹ phát triển", "Mở rộng cửa hàng, thiết bị", types.MustMoney("15"), true},
		{"Quỹ thưởng nhân viên", "Thưởng quý và lễ tết", types.MustMoney("10"), true},
		{"Marketing", "Quảng cáo và khuyến mãi", types.MustMoney("10"), false},
		{"Cổ tức", "Chia cho chủ sở hữu", types.MustMoney("40"), false},
	}

	for _, account := range accounts {
		var existingID id.ID
		err := pool.Pool.QueryRow(ctx,
			`SELECT id FROM cat_fund_accounts WHERE name = $1`,
			account.name,
		).Scan(&existingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check fund account %q: %w", account.name, err)
		}

		_, err = pool.Pool.Exec(ctx, `
			INSERT INTO cat_fund_accounts (
				id, name, description, percentage, include_in_reserve_total,
				is_active, version
			)
			VALUES ($1, $2, $3, $4, $5, true, 1)
		`, id.New(), account.name, account.description, account.percentage, account.includeReserve)
		if err != nil {
			return fmt.Errorf("insert fund account %q: %w", account.name, err)
		}

		log.Infow("fund account created",
			"name", account.name,
			"percentage", account.percentage,
			"include_in_reserve_total", account.includeReserve,
		)
	}

	return nil
}

func seedDemoItems(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	items := []struct {
		name      string
		unit      string
		unitPrice types.Money
		minStock  types.Quantity
	}{
		{"Trà đen", "kg", types.MustMoney("120000"), types.MustMoney("2")},
		{"Trà ô long", "kg", types.MustMoney("250000"), types.MustMoney("1")},
		{"Trân châu trắng", "kg", types.MustMoney("45000"), types.MustMoney("3")},
		{"Sữa đặc", "hộp", types.MustMoney("28000"), types.MustMoney("10")},
		{"Ly nhựa 500ml", "cái", types.MustMoney("800"), types.MustMoney("200")},
	}

	for _, item := range items {
		var existingID id.ID
		err := pool.Pool.QueryRow(ctx,
			`SELECT id FROM cat_items WHERE name = $1`,
			item.name,
		).Scan(&existingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check item %q: %w", item.name, err)
		}

		_, err = pool.Pool.Exec(ctx, `
			INSERT INTO cat_items (
				id, name, unit, unit_price, current_stock, min_stock,
				is_active, version
			)
			VALUES ($1, $2, $3, $4, 0, $5, true, 1)
		`, id.New(), item.name, item.unit, item.unitPrice, item.minStock)
		if err != nil {
			return fmt.Errorf("insert item %q: %w", item.name, err)
		}

		log.Infow("demo item created", "name", item.name, "unit", item.unit)
	}

	return nil
}
