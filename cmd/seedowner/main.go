// cmd/seedowner/main.go — creates a demo owner with its business.
// Usage: go run ./cmd/seedowner
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Whillz7/BizFinTrackr/internal/config"
	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/infra"
	"github.com/Whillz7/BizFinTrackr/internal/repository"
	"github.com/Whillz7/BizFinTrackr/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	authSvc := service.NewAuthService(
		repository.NewOwnerRepository(db),
		repository.NewStaffRepository(db),
		repository.NewBusinessRepository(db),
		cfg,
	)

	req := dto.RegisterRequest{
		Username:     "demo",
		Email:        "demo@bizfintrackr.local",
		Password:     "demo-pass-2026",
		BusinessName: "Demo Traders",
	}
	user, err := authSvc.RegisterOwner(context.Background(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			fmt.Println("demo owner already exists, nothing to do")
			return
		}
		log.Fatalf("seed error: %v", err)
	}
	fmt.Printf("owner %q created for business %q (%s)\n", user.Username, user.BusinessName, user.BusinessCode)
}
