package service

import (
	"context"
	"encoding/json"
	"log"

	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/query"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, prefixes ...query.Key) error
}

var _ CacheInvalidator = (*query.Client)(nil)

// StatusConsumer applies order status events published by other storefront
// instances to the local cache, so watchers see the change before their next poll.
type StatusConsumer struct {
	Reader MessageReader
	Cache  CacheInvalidator
}

func NewStatusConsumer(reader MessageReader, cache CacheInvalidator) *StatusConsumer {
	return &StatusConsumer{
		Reader: reader,
		Cache:  cache,
	}
}

func (c *StatusConsumer) Start(ctx context.Context) {
	log.Println("[storefront] starting order status consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[storefront] order status consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderStatusEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessStatusEvent(ctx, event)
	}
}

func (c *StatusConsumer) ProcessStatusEvent(ctx context.Context, event domain.OrderStatusEvent) {
	if event.Type != EventOrderStatusChanged || event.OrderID == "" {
		return
	}

	keys := []query.Key{query.OrderKey(event.OrderID)}
	if event.RestaurantID != "" {
		keys = append(keys, query.OrdersKey(event.RestaurantID))
	}
	if err := c.Cache.Invalidate(ctx, keys...); err != nil {
		log.Printf("Error invalidating order %s: %v", event.OrderID, err)
		return
	}
	log.Printf("[storefront] order %s is now %s", event.OrderID, event.Current)
}
