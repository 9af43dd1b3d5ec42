// FILE: cmd/seed/main.go
package main

import (
	"context"
	"log"
	"time"

	"radiant-system-be/internal/config"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/implementation"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/database"
	"radiant-system-be/pkg/recordstore"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Seeds demo accounts into whichever store backend the environment selects.
func main() {
	cfg := config.Load()
	sysLogger := logger.NewIsolatedLogger("logs/seed.log")

	var store recordstore.Store
	switch cfg.Store.Backend {
	case "redis":
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("Error: Failed to parse Redis URL: %v", err)
		}
		store = recordstore.NewRedisStore(redis.NewClient(opt))
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Store.Connection)
		if err != nil {
			log.Fatalf("Error: Failed to connect to database: %v", err)
		}
		store, err = recordstore.NewPostgresStore(db)
		if err != nil {
			log.Fatalf("Error: Failed to prepare records table: %v", err)
		}
	default:
		log.Fatal("Error: seeding the memory backend is pointless, set STORAGE_BACKEND=redis or postgres")
	}

	users := implementation.NewUserRepository(store, sysLogger)
	ctx := context.Background()

	color.Cyan("🌱 Seeding demo accounts (%s backend)\n", cfg.Store.Backend)

	demos := []struct {
		Email    string
		FullName string
		Password string
		Plan     entity.UserPlan
	}{
		{"demo-budget@example.com", "Demo Budget", "demo-budget-pass", entity.PlanBudget},
		{"demo-pro@example.com", "Demo Pro", "demo-pro-pass", entity.PlanPro},
		{"demo-legend@example.com", "Demo Legend", "demo-legend-pass", entity.PlanLegend},
	}

	for _, d := range demos {
		existing, err := users.FindOne(ctx, specification.UserByEmail{Email: d.Email})
		if err != nil {
			color.Red("Failed to check %s: %v", d.Email, err)
			continue
		}
		if existing != nil {
			color.Yellow("Account %s already exists, skipping", d.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			color.Red("Failed to hash password for %s: %v", d.Email, err)
			continue
		}

		user := &entity.User{
			Id:           uuid.New(),
			Email:        d.Email,
			FullName:     d.FullName,
			PasswordHash: string(hash),
			Plan:         d.Plan,
			UsageStats:   entity.UsageStats{},
			JoinedAt:     time.Now(),
		}
		if err := users.Save(ctx, user); err != nil {
			color.Red("Failed to save %s: %v", d.Email, err)
			continue
		}
		color.Green("Created %s (%s plan)", d.Email, d.Plan)
	}

	color.Cyan("\nDone.")
}
