package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"overcooked-client/config"
	httpapi "overcooked-client/storefront/internal/api/http"
	"overcooked-client/storefront/internal/auth"
	"overcooked-client/storefront/internal/backend"
	"overcooked-client/storefront/internal/basket"
	"overcooked-client/storefront/internal/metrics"
	"overcooked-client/storefront/internal/query"
	"overcooked-client/storefront/internal/service"
	"overcooked-client/storefront/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	connectRedis    = config.MustInitRedis
	connectPostgres = config.MustInitPostgres
)

// openSlot returns the durable slot for the configured backend and a func
// that releases its connection.
func openSlot(ctx context.Context, cfg config.SlotConfig) (storage.Slot, func(), error) {
	switch cfg.Backend {
	case config.SlotMemory:
		return storage.NewMemorySlot(), func() {}, nil
	case config.SlotFile:
		return storage.NewFileSlot(cfg.File), func() {}, nil
	case config.SlotRedis:
		rdb := connectRedis()
		return storage.NewRedisSlot(rdb, cfg.Scope, cfg.TTL), func() { rdb.Close() }, nil
	case config.SlotPostgres:
		db := connectPostgres()
		slot := storage.NewPostgresSlot(db, cfg.Scope)
		if err := slot.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return slot, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown slot backend %q", cfg.Backend)
	}
}

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slot, closeSlot, err := openSlot(ctx, cfg.Slot)
	if err != nil {
		log.Fatal("Failed to open state slot:", err)
	}
	defer closeSlot()
	log.Printf("[storefront] basket and session stored in %s slot", cfg.Slot.Backend)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cache := query.NewClient(metrics.New(reg))

	session := auth.NewSession(slot)
	client := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.Timeout}, session)
	basketStore := basket.NewStore(slot, basket.NewNotifier())
	validate := service.NewValidator()

	var publisher service.OrderPublisher
	if cfg.Kafka.Broker != "" {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		go service.NewStatusConsumer(reader, cache).Start(ctx)
		log.Printf("[storefront] order status events on %s/%s", cfg.Kafka.Broker, cfg.Kafka.Topic)
	} else {
		log.Println("[storefront] KAFKA_BROKER not set, order status events disabled")
	}

	handler := httpapi.NewHandler(
		service.NewDishService(client, cache, service.NewToggleSet(), validate),
		service.NewOrderService(client, basketStore, cache, publisher,
			service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, validate,
			service.OrderConfig{
				OrderPollInterval:  cfg.OrderPollInterval,
				OrdersPollInterval: cfg.OrdersPollInterval,
				PaymentToken:       cfg.PaymentToken,
			}),
		service.NewRestaurantService(client, session, cache, validate),
		service.NewAuthService(client, session, validate),
		basketStore,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)

	go httpapi.StartServer(cfg.ListenAddr, httpapi.NewRouter(handler, cfg.StaticDir))

	<-ctx.Done()
	log.Println("[storefront] shutting down")
}
