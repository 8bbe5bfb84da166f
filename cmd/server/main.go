package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codechat-backend/internal/config"
	"codechat-backend/internal/handlers"
	"codechat-backend/internal/router"
	"codechat-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting CodeChat Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	predictionService, err := services.NewPredictionService(
		context.Background(),
		cfg.GeminiAPIKey,
		cfg.GoogleProjectID,
		cfg.GoogleLocation,
		cfg.GeminiModel,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer predictionService.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Step 3: Start HTTP Server ────
	codeHandler := handlers.NewCodeHandler(predictionService)
	r := router.New(codeHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ CodeChat Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat UI: http://localhost:%s/", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
