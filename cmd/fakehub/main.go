package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ghsearch/internal/domain"
	"ghsearch/internal/fakehub"
)

//go:embed users.yaml
var defaultUsers []byte

func main() {
	var (
		addr        string
		usersPath   string
		latency     time.Duration
		failStatus  int
		failMessage string
	)
	flag.StringVar(&addr, "addr", "127.0.0.1:8089", "Listen address")
	flag.StringVar(&usersPath, "users", "", "YAML fixture with users (default: built-in set)")
	flag.DurationVar(&latency, "latency", 0, "Delay before every search response")
	flag.IntVar(&failStatus, "fail-status", 0, "Fail every search with this HTTP status")
	flag.StringVar(&failMessage, "fail-message", "API rate limit exceeded", "Message returned with -fail-status")
	flag.Parse()

	users, err := loadUsers(usersPath)
	if err != nil {
		fmt.Printf("Error loading users: %v\n", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr: addr,
		Handler: fakehub.NewRouter(users, fakehub.Options{
			Latency:     latency,
			FailStatus:  failStatus,
			FailMessage: failMessage,
		}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("fakehub serving %d users on http://%s", len(users), addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("fakehub: %v", err)
	}
}

func loadUsers(path string) ([]domain.User, error) {
	if path != "" {
		return fakehub.LoadUsers(path)
	}
	return fakehub.ParseUsers(defaultUsers)
}
