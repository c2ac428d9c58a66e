package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"overcooked-client/storefront/internal/basket"
	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/query"
)

const (
	DefaultOrderPollInterval  = 3 * time.Second
	DefaultOrdersPollInterval = 5 * time.Second
)

const EventOrderStatusChanged = "order_status_changed"

type TimelineView struct {
	Order    domain.Order          `json:"order"`
	Steps    []domain.TimelineStep `json:"steps"`
	Actions  []domain.OwnerAction  `json:"actions"`
	Terminal bool                  `json:"terminal"`
}

type checkoutInput struct {
	OrderID string
	Request domain.CheckoutRequest
}

type OrderConfig struct {
	OrderPollInterval  time.Duration
	OrdersPollInterval time.Duration
	PaymentToken       string
}

type OrderService struct {
	backend   OrderBackend
	basket    BasketStore
	cache     *query.Client
	publisher OrderPublisher
	qr        QRGenerator
	validate  *Validator
	config    OrderConfig

	placeOrder *query.Mutation[[]string, domain.OrderIDDTO]
	checkout   *query.Mutation[checkoutInput, domain.ResponseDTO]
	ops        map[string]statusReporter
	tracker    *statusTracker

	// basket totals at the time each order was placed, charged at checkout
	mu      sync.Mutex
	amounts map[string]float64
}

func NewOrderService(backend OrderBackend, basketStore BasketStore, cache *query.Client, publisher OrderPublisher, qr QRGenerator, validate *Validator, config OrderConfig) *OrderService {
	if config.OrderPollInterval <= 0 {
		config.OrderPollInterval = DefaultOrderPollInterval
	}
	if config.OrdersPollInterval <= 0 {
		config.OrdersPollInterval = DefaultOrdersPollInterval
	}

	s := &OrderService{
		backend:   backend,
		basket:    basketStore,
		cache:     cache,
		publisher: publisher,
		qr:        qr,
		validate:  validate,
		config:    config,
		tracker:   newStatusTracker(publisher),
		amounts:   make(map[string]float64),
	}

	s.placeOrder = query.NewMutation(cache, "place_order",
		func(ctx context.Context, dishes []string) (domain.OrderIDDTO, error) {
			return backend.CreateOrder(ctx, domain.CreateOrderRequest{Dishes: dishes})
		},
		func(_ []string, out domain.OrderIDDTO) []query.Key {
			return []query.Key{query.OrderKey(out.OrderID)}
		})

	s.checkout = query.NewMutation(cache, "checkout",
		func(ctx context.Context, in checkoutInput) (domain.ResponseDTO, error) {
			return backend.Checkout(ctx, in.OrderID, in.Request)
		},
		func(in checkoutInput, _ domain.ResponseDTO) []query.Key {
			return []query.Key{query.OrderKey(in.OrderID)}
		})

	s.ops = map[string]statusReporter{
		"place_order": s.placeOrder,
		"checkout":    s.checkout,
	}
	return s
}

func (s *OrderService) orderQuery(orderID string) *query.Query[domain.Order] {
	return query.NewQuery(s.cache, query.OrderKey(orderID), func(ctx context.Context) (domain.Order, error) {
		return s.backend.Order(ctx, orderID)
	}).StaleAfter(s.config.OrderPollInterval)
}

func (s *OrderService) ordersQuery(restaurantID string) *query.Query[[]domain.Order] {
	return query.NewQuery(s.cache, query.OrdersKey(restaurantID), func(ctx context.Context) ([]domain.Order, error) {
		return s.backend.RestaurantOrders(ctx, restaurantID)
	}).StaleAfter(s.config.OrdersPollInterval)
}

// PlaceOrder sends the basket as a flat dish id list, one entry per unit.
func (s *OrderService) PlaceOrder(ctx context.Context) (string, error) {
	items, err := s.basket.List(ctx)
	if err != nil {
		return "", fmt.Errorf("read basket: %w", err)
	}
	if len(items) == 0 {
		return "", domain.NewValidationError("basket", "is empty")
	}

	created, err := s.placeOrder.Do(ctx, basket.ExpandDishIDs(items))
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.amounts[created.OrderID] = basket.Total(items)
	s.mu.Unlock()
	log.Printf("[storefront] placed order %s with %d dishes", created.OrderID, basket.Count(items))
	return created.OrderID, nil
}

// Checkout clears the basket on success and leaves it untouched on failure.
func (s *OrderService) Checkout(ctx context.Context, orderID string, form domain.CheckoutForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	amount, err := s.amountDue(ctx, orderID)
	if err != nil {
		return err
	}

	req := domain.CheckoutRequest{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		DeliveryAddress: form.DeliveryAddress,
		Email:           form.Email,
		PhoneNumber:     form.PhoneNumber,
		PaymentInfo: domain.PaymentInfo{
			Method:       strings.ToUpper(form.Payment.Method),
			Amount:       amount,
			PaymentToken: s.config.PaymentToken,
		},
	}
	if _, err := s.checkout.Do(ctx, checkoutInput{OrderID: orderID, Request: req}); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.amounts, orderID)
	s.mu.Unlock()
	// paid: the basket goes even if the caller stopped waiting
	if err := s.basket.Clear(context.WithoutCancel(ctx)); err != nil {
		log.Printf("WARNING: order %s checked out but basket was not cleared: %v", orderID, err)
	}
	return nil
}

// amountDue is the basket total captured by PlaceOrder, or the order's own
// total for orders placed before a restart.
func (s *OrderService) amountDue(ctx context.Context, orderID string) (float64, error) {
	s.mu.Lock()
	amount, ok := s.amounts[orderID]
	s.mu.Unlock()
	if ok {
		return amount, nil
	}

	order, err := s.orderQuery(orderID).Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("read order total: %w", err)
	}
	return order.TotalPrice, nil
}

func (s *OrderService) Order(ctx context.Context, orderID string) (domain.Order, error) {
	return s.orderQuery(orderID).Get(ctx)
}

func (s *OrderService) RestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.ordersQuery(restaurantID).Get(ctx)
}

// RefreshOrder skips the cache and reloads the order from the backend.
func (s *OrderService) RefreshOrder(ctx context.Context, orderID string) (domain.Order, error) {
	return s.orderQuery(orderID).Refetch(ctx)
}

func (s *OrderService) RefreshRestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.ordersQuery(restaurantID).Refetch(ctx)
}

func (s *OrderService) Timeline(ctx context.Context, orderID string) (TimelineView, error) {
	order, err := s.Order(ctx, orderID)
	if err != nil {
		return TimelineView{}, err
	}
	return NewTimelineView(order), nil
}

func NewTimelineView(order domain.Order) TimelineView {
	return TimelineView{
		Order:    order,
		Steps:    domain.BuildTimeline(order),
		Actions:  order.OrderStatus.AvailableActions(),
		Terminal: order.OrderStatus.IsTerminal(),
	}
}

// Owner transitions do not touch local state; the next poll, or a read once
// the cached order is older than its poll interval, shows the result.

func (s *OrderService) Accept(ctx context.Context, restaurantID, orderID string) error {
	_, err := s.backend.AcceptOrder(ctx, restaurantID, orderID)
	return err
}

func (s *OrderService) Reject(ctx context.Context, restaurantID, orderID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.NewValidationError("reason", "is required")
	}
	_, err := s.backend.RejectOrder(ctx, restaurantID, orderID, reason)
	return err
}

func (s *OrderService) MarkReady(ctx context.Context, restaurantID, orderID string) error {
	_, err := s.backend.MarkOrderReady(ctx, restaurantID, orderID)
	return err
}

func (s *OrderService) TrackingQRCode(orderID string) ([]byte, error) {
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qr.Generate(orderID)
}

// statusTracker remembers the last seen status per order and publishes changes.
type statusTracker struct {
	mu        sync.Mutex
	last      map[string]domain.OrderStatus
	publisher OrderPublisher
}

func newStatusTracker(publisher OrderPublisher) *statusTracker {
	return &statusTracker{last: make(map[string]domain.OrderStatus), publisher: publisher}
}

func (t *statusTracker) observe(ctx context.Context, order domain.Order) {
	t.mu.Lock()
	previous, seen := t.last[order.ID]
	t.last[order.ID] = order.OrderStatus
	t.mu.Unlock()

	if !seen || previous == order.OrderStatus || t.publisher == nil {
		return
	}

	event := domain.OrderStatusEvent{
		Type:         EventOrderStatusChanged,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Previous:     previous,
		Current:      order.OrderStatus,
		OccurredAt:   order.StatusOccurredAt,
		Timestamp:    time.Now(),
	}
	if err := t.publisher.PublishOrderStatus(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish status change for order %s: %v", order.ID, err)
	}
}

// WatchOrder polls one order until ctx ends or the subscription is stopped.
func (s *OrderService) WatchOrder(ctx context.Context, orderID string, fn func(domain.Order, error)) *query.Subscription {
	return query.Poll(ctx, s.orderQuery(orderID), s.config.OrderPollInterval, func(order domain.Order, err error) {
		if err == nil {
			s.tracker.observe(ctx, order)
		}
		if fn != nil {
			fn(order, err)
		}
	})
}

// WatchRestaurantOrders polls the owner's order list at the longer interval.
func (s *OrderService) WatchRestaurantOrders(ctx context.Context, restaurantID string, fn func([]domain.Order, error)) *query.Subscription {
	return query.Poll(ctx, s.ordersQuery(restaurantID), s.config.OrdersPollInterval, func(orders []domain.Order, err error) {
		if err == nil {
			for _, order := range orders {
				s.tracker.observe(ctx, order)
			}
		}
		if fn != nil {
			fn(orders, err)
		}
	})
}

func (s *OrderService) OpStatus(name string) OpStatus {
	return opStatus(s.ops, name)
}
