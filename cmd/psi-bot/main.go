package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// Initialize composition root with all dependencies
	root, err := NewCompositionRoot()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Ensure cleanup on exit
	defer func() {
		if err := root.Cleanup(); err != nil {
			root.Logger.Error("Failed to cleanup resources", zap.Error(err))
		}
	}()

	// Start HTTP API and metrics server
	listenAddr := root.Config.Server.ListenAddr
	go func() {
		if err := root.HTTPServer.Start(listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			root.Logger.Error("HTTP server failed", zap.String("listen_addr", listenAddr), zap.Error(err))
		}
	}()

	root.Scheduler.Start()

	// Start the bot
	botCtx, stopBot := context.WithCancel(context.Background())
	defer stopBot()

	if err := root.Bot.Setup(botCtx); err != nil {
		root.Logger.Error("Failed to set up bot, polling anyway", zap.Error(err))
	}

	botDone := make(chan struct{})
	go func() {
		defer close(botDone)
		if err := root.Bot.Run(botCtx); err != nil {
			root.Logger.Error("Bot stopped with error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	root.Logger.Info("Shutting down", zap.String("signal", sig.String()))

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stopBot()
	select {
	case <-botDone:
	case <-ctx.Done():
		root.Logger.Warn("Bot polling did not stop in time")
	}
	if err := root.Bot.Shutdown(ctx); err != nil {
		root.Logger.Warn("Update handlers still running", zap.Error(err))
	}

	if err := root.HTTPServer.Stop(ctx); err != nil {
		root.Logger.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	root.Scheduler.Stop()

	if err := root.ValueCache.Flush(ctx); err != nil {
		root.Logger.Error("Failed to flush value cache", zap.Error(err))
	} else {
		root.Logger.Info("Value cache flushed", zap.Int("entries", root.ValueCache.Len()))
	}

	root.Logger.Info("Bot exited")
}
