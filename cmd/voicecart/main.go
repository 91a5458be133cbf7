package main

import (
	"context"
	"time"

	"github.com/voicecart/voicecart/config"
	"github.com/voicecart/voicecart/internal/app"
	"github.com/voicecart/voicecart/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	voicecartService := app.New(sigCtx, cfg)

	voicecartService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	voicecartService.Close(ctx)
}
