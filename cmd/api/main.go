package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tastetrial/paradise-api/internal/auth"
	"github.com/tastetrial/paradise-api/internal/catalog"
	"github.com/tastetrial/paradise-api/internal/config"
	"github.com/tastetrial/paradise-api/internal/httpx"
	kafkax "github.com/tastetrial/paradise-api/internal/kafka"
	"github.com/tastetrial/paradise-api/internal/mongox"
	"github.com/tastetrial/paradise-api/internal/orders"
	"github.com/tastetrial/paradise-api/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store
	client, err := mongox.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDB)

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024)
	prod.Start(ctx)

	// Tokens
	tokens, err := auth.NewManager(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("token manager: %v", err)
	}

	// Repos & handlers
	foodRepo := &catalog.Repo{C: db.Collection("foods")}
	orderRepo := &orders.Repo{C: db.Collection("orderedFoods")}

	router := httpx.NewRouter(cfg.AllowedOrigins)
	(&httpx.AuthHandler{Tokens: tokens, Production: cfg.Production}).Register(router)
	(&httpx.FoodsHandler{Store: foodRepo, Redis: rdb}).Register(router)
	(&httpx.OrdersHandler{Store: orderRepo, Producer: prod, Service: cfg.ServiceName}).Register(router, tokens.Verify)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // stop intake, flush remaining events
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
