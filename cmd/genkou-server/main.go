package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/iw2rmb/genkou"
	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/transport"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "genkou-server: load .env: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", getEnv("GENKOU_ADDR", ":8080"), "listen address")
	lock := flag.Bool("lock", true, "return submitted essays read-only")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(genkou.BuildInfo("genkou-server"))
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var review transport.ReviewFunc
	if *lock {
		review = lockReview
	}
	api := transport.NewServer(transport.ServerConfig{Review: review, Logger: logger})

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.RealIP)
	r.Mount("/", api.Routes())

	srv := &http.Server{
		Addr:         *addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
}

// lockReview returns the submission with editing switched off, so the
// writer sees the submitted text read-only.
func lockReview(doc essay.Document) (essay.Document, error) {
	doc.Settings.Editable = false
	doc.Settings.EditableStructure = false
	return doc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
