// Command coinfolio is a terminal client for the personal portfolio
// tracker. It signs into the backend, then polls holdings once a second,
// joins them with live exchange quotes and repaints the portfolio screen.
//
// Usage:
//
//	coinfolio --backend http://localhost:8080
//	coinfolio --config config.yaml
//
// The backend URL and quote platform can also come from COINFOLIO_BACKEND
// and COINFOLIO_PLATFORM (a .env file is honored).
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/avolkov/coinfolio/config"
	"github.com/avolkov/coinfolio/internal"
	"github.com/avolkov/coinfolio/internal/clients"
	"github.com/avolkov/coinfolio/internal/services/pricer"
	"github.com/avolkov/coinfolio/internal/services/symbols"
	"github.com/avolkov/coinfolio/internal/view"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	backend := clients.NewBackend(cfg.BackendURL, logger)

	var (
		quotes   pricer.QuoteProvider
		universe symbols.UniverseProvider
	)
	switch cfg.Platform {
	case "binance":
		client := clients.NewBinanceClient()
		quotes = pricer.NewBinanceQuoter(client)
		universe = symbols.NewBinanceUniverse(client)
	case "bybit":
		client := clients.NewBybitClient()
		quotes = pricer.NewBybitQuoter(client)
		universe = symbols.NewBybitUniverse(client)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := authenticate(ctx, backend); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return
		}
		logger.Fatal("authentication failed", zap.Error(err))
	}

	app := internal.NewApp(
		backend,
		quotes,
		symbols.NewCache(universe),
		view.NewPortfolioView(view.NewIconResolver(cfg.IconCDN, logger)),
		logger,
		os.Stdin,
		os.Stdout,
	)

	if err := app.Run(ctx); err != nil {
		logger.Fatal("portfolio client stopped", zap.Error(err))
	}
}

// authenticate walks the login/register screens until a session exists.
func authenticate(ctx context.Context, backend *clients.Backend) error {
	for {
		choice, err := view.AuthChoiceForm()
		if err != nil {
			return err
		}

		switch choice {
		case "register":
			creds, err := view.RegisterForm()
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				view.PrintAlert(err.Error())
				continue
			}
			if err := backend.Register(ctx, creds.Username, creds.Password); err != nil {
				view.PrintAlert("Registration failed. Please try again.")
				continue
			}
			view.PrintSuccess("Registration successful! You can now log in.")
		case "login":
			creds, err := view.LoginForm()
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
			if err := backend.Login(ctx, creds.Username, creds.Password); err != nil {
				view.PrintAlert("Login failed. Please try again.")
				continue
			}
			return nil
		}
	}
}
