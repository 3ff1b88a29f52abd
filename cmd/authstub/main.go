// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command authstub runs the in-memory stub auth service on the port the
// client expects (3001), so the full register/login/profile/logout loop can
// be exercised without the real microservice.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/taibuivan/hiraku/internal/stub"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "hiraku-authstub"))
	slog.SetDefault(log)

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "3001"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: stub.New(stub.DefaultConfig(), log).Router(),
	}

	go func() {
		log.Info("stub_listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("stub server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Info("shutdown signal received", slog.String("signal", sig.String()))

	_ = server.Close()
}
