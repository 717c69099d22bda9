// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"orcado/internal/core/id"
	"orcado/internal/domain/catalogs/canvascolor"
	"orcado/internal/domain/catalogs/client"
	"orcado/internal/domain/catalogs/priceitem"
	"orcado/internal/domain/catalogs/seller"
	"orcado/internal/infrastructure/storage/postgres"
	"orcado/internal/infrastructure/storage/postgres/catalog_repo"
	"orcado/pkg/logger"
	"orcado/pkg/numerator"
)

func main() {
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

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.QueryRow(ctx,
		`SELECT id FROM users WHERE lower(username) = lower($1)`,
		adminUsername,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "username", adminUsername, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (
			id, username, email, password_hash, full_name, role,
			is_active, created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, 'admin', true, $6, $6, 1)
	`, userID, adminUsername, adminUsername+"@orcado.local", string(passwordHash), "Administrator", now)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "username", adminUsername, "user_id", userID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	txManager := postgres.NewTxManager(pool)
	gen := numerator.New(pool)

	clientService := client.NewService(catalog_repo.NewClientRepo(txManager), gen, txManager)
	sellerService := seller.NewService(catalog_repo.NewSellerRepo(txManager), gen, txManager)
	priceItemService := priceitem.NewService(catalog_repo.NewPriceItemRepo(txManager), gen, txManager)
	canvasColorService := canvascolor.NewService(catalog_repo.NewCanvasColorRepo(txManager), gen, txManager)

	// Price table
	priceItems := []struct {
		name     string
		unit     string
		price    string
		category string
	}{
		{"Lona frontlight 440g", "m2", "38.50", "Lonas"},
		{"Adesivo vinil brilho", "m2", "42.00", "Adesivos"},
		{"Adesivo perfurado", "m2", "55.00", "Adesivos"},
		{"Instalação de sider", "un", "350.00", "Serviços"},
		{"Remoção de lona", "un", "180.00", "Serviços"},
		{"Deslocamento", "km", "2.80", "Serviços"},
	}
	for _, item := range priceItems {
		price, err := decimal.NewFromString(item.price)
		if err != nil {
			return fmt.Errorf("parse price %q: %w", item.price, err)
		}
		p := priceitem.New("", item.name, item.unit, price)
		p.Category = item.category
		if err := priceItemService.Create(ctx, p); err != nil {
			return fmt.Errorf("seed price item %q: %w", item.name, err)
		}
	}
	log.Infow("price table seeded", "items", len(priceItems))

	// Canvas colors
	colors := []struct {
		name string
		hex  string
	}{
		{"Branco", "#FFFFFF"},
		{"Preto", "#000000"},
		{"Azul", "#1E4D8C"},
		{"Vermelho", "#C62828"},
	}
	for _, color := range colors {
		cc := canvascolor.New("", color.name)
		hex := color.hex
		cc.HexValue = &hex
		if err := canvasColorService.Create(ctx, cc); err != nil {
			return fmt.Errorf("seed canvas color %q: %w", color.name, err)
		}
	}
	log.Infow("canvas colors seeded", "colors", len(colors))

	// Sellers
	sellers := []struct {
		name string
		rate string
	}{
		{"Carlos Mendes", "5.0"},
		{"Fernanda Souza", "4.5"},
	}
	for _, item := range sellers {
		rate, err := decimal.NewFromString(item.rate)
		if err != nil {
			return fmt.Errorf("parse rate %q: %w", item.rate, err)
		}
		s := seller.New("", item.name, rate)
		if err := sellerService.Create(ctx, s); err != nil {
			return fmt.Errorf("seed seller %q: %w", item.name, err)
		}
	}
	log.Infow("sellers seeded", "sellers", len(sellers))

	// Demo clients
	clients := []struct {
		name     string
		document string
		city     string
	}{
		{"Transportadora Rodalog Ltda", "12.345.678/0001-90", "Curitiba"},
		{"Express Cargas SA", "98.765.432/0001-10", "São Paulo"},
		{"Mudanças Silva ME", "45.678.912/0001-34", "Joinville"},
	}
	for _, item := range clients {
		c := client.New("", item.name)
		document := item.document
		city := item.city
		c.Document = &document
		c.City = &city
		if err := clientService.Create(ctx, c); err != nil {
			return fmt.Errorf("seed client %q: %w", item.name, err)
		}
	}
	log.Infow("demo clients seeded", "clients", len(clients))

	return nil
}
