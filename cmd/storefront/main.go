package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/DelcyVillalba/chic-storefront/config"
	"github.com/DelcyVillalba/chic-storefront/internal/app"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)

	storefront.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	storefront.Close(ctx)
}
