package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/mocks"
	"overcooked-client/storefront/internal/query"
	"overcooked-client/storefront/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusConsumer_ProcessStatusEvent(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.OrderStatusEvent
		setupMockCache func(*mocks.CacheInvalidator)
	}{
		{
			name: "invalidates order and restaurant list",
			event: domain.OrderStatusEvent{
				Type:         service.EventOrderStatusChanged,
				OrderID:      "o1",
				RestaurantID: "r1",
				Current:      domain.StatusAccepted,
			},
			setupMockCache: func(m *mocks.CacheInvalidator) {
				m.On("Invalidate", mock.Anything, query.OrderKey("o1"), query.OrdersKey("r1")).Return(nil).Once()
			},
		},
		{
			name: "event without restaurant only touches the order",
			event: domain.OrderStatusEvent{
				Type:    service.EventOrderStatusChanged,
				OrderID: "o1",
				Current: domain.StatusDelivered,
			},
			setupMockCache: func(m *mocks.CacheInvalidator) {
				m.On("Invalidate", mock.Anything, query.OrderKey("o1")).Return(nil).Once()
			},
		},
		{
			name: "invalidation error is logged",
			event: domain.OrderStatusEvent{
				Type:    service.EventOrderStatusChanged,
				OrderID: "o2",
			},
			setupMockCache: func(m *mocks.CacheInvalidator) {
				m.On("Invalidate", mock.Anything, query.OrderKey("o2")).Return(errors.New("refetch failed")).Once()
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockCache := mocks.NewCacheInvalidator(t)
			testCase.setupMockCache(mockCache)

			consumer := &service.StatusConsumer{
				Cache: mockCache,
			}

			consumer.ProcessStatusEvent(context.Background(), testCase.event)
		})
	}
}

func TestStatusConsumer_IgnoresOtherEvents(t *testing.T) {
	mockCache := mocks.NewCacheInvalidator(t)
	consumer := &service.StatusConsumer{
		Cache: mockCache,
	}

	consumer.ProcessStatusEvent(context.Background(), domain.OrderStatusEvent{Type: "new_review", OrderID: "o1"})
	mockCache.AssertNotCalled(t, "Invalidate")
}

func TestStatusConsumer_StartStopsWithContext(t *testing.T) {
	mockReader := mocks.NewMessageReader(t)
	mockCache := mocks.NewCacheInvalidator(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.OrderStatusEvent{Type: service.EventOrderStatusChanged, OrderID: "o1"})
	require.NoError(t, err)

	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{not json")}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	mockCache.On("Invalidate", mock.Anything, query.OrderKey("o1")).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.NewStatusConsumer(mockReader, mockCache).Start(ctx)
	}()
	<-done
}
