package service

import (
	"context"
	"time"

	"overcooked-client/storefront/internal/auth"
	"overcooked-client/storefront/internal/backend"
	"overcooked-client/storefront/internal/basket"
	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/query"
	"overcooked-client/storefront/internal/storage"
)

type DishBackend interface {
	Dishes(ctx context.Context, restaurantID string, state domain.DishState) ([]domain.Dish, error)
	Dish(ctx context.Context, restaurantID, dishID string, state domain.DishState) (domain.Dish, error)
	CreateDraft(ctx context.Context, restaurantID string, dish domain.Dish) (domain.ResponseDTO, error)
	UpdateDraft(ctx context.Context, restaurantID, dishID string, dish domain.Dish) (domain.ResponseDTO, error)
	SetPublished(ctx context.Context, restaurantID, dishID string, published bool) (domain.ResponseDTO, error)
	SetStock(ctx context.Context, restaurantID, dishID string, inStock bool) (domain.ResponseDTO, error)
	PublishAll(ctx context.Context, restaurantID string) (domain.ResponseDTO, error)
	SchedulePublish(ctx context.Context, restaurantID string, when time.Time) (domain.ResponseDTO, error)
}

type OrderBackend interface {
	RestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
	Order(ctx context.Context, orderID string) (domain.Order, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderIDDTO, error)
	Checkout(ctx context.Context, orderID string, req domain.CheckoutRequest) (domain.ResponseDTO, error)
	AcceptOrder(ctx context.Context, restaurantID, orderID string) (domain.ResponseDTO, error)
	RejectOrder(ctx context.Context, restaurantID, orderID, reason string) (domain.ResponseDTO, error)
	MarkOrderReady(ctx context.Context, restaurantID, orderID string) (domain.ResponseDTO, error)
}

type RestaurantBackend interface {
	OwnerRestaurant(ctx context.Context, ownerID string) (domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.ResponseDTO, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	Restaurant(ctx context.Context, restaurantID string) (domain.Restaurant, error)
	OpenStatus(ctx context.Context, restaurantID string) (domain.OpenStatusDTO, error)
	UpdateOpenStatus(ctx context.Context, restaurantID string, status domain.OpenStatus) (domain.ResponseDTO, error)
}

type AuthBackend interface {
	Register(ctx context.Context, req domain.RegisterOwnerRequest) (domain.JwtDTO, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.JwtDTO, error)
}

type SessionStore interface {
	Save(ctx context.Context, jwtDTO domain.JwtDTO) error
	Token(ctx context.Context) (string, error)
	LoggedIn(ctx context.Context) bool
	UserID(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type BasketStore interface {
	Add(ctx context.Context, item domain.BasketItem) error
	Remove(ctx context.Context, dishID string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) ([]domain.BasketItem, error)
	Subscribe(fn basket.Listener) (unsubscribe func())
}

type OrderPublisher interface {
	PublishOrderStatus(ctx context.Context, event domain.OrderStatusEvent) error
}

var (
	_ DishBackend       = (*backend.Client)(nil)
	_ OrderBackend      = (*backend.Client)(nil)
	_ RestaurantBackend = (*backend.Client)(nil)
	_ AuthBackend       = (*backend.Client)(nil)
	_ SessionStore      = (*auth.Session)(nil)
	_ BasketStore       = (*basket.Store)(nil)
	_ OrderPublisher    = (*storage.KafkaPublisher)(nil)
)

// OpStatus reports the flags of the last run of a named operation.
type OpStatus struct {
	IsPending bool `json:"isPending"`
	IsError   bool `json:"isError"`
}

type statusReporter interface {
	IsPending() bool
	IsError() bool
}

func opStatus(ops map[string]statusReporter, name string) OpStatus {
	op, ok := ops[name]
	if !ok {
		return OpStatus{}
	}
	return OpStatus{IsPending: op.IsPending(), IsError: op.IsError()}
}

type DishServiceInterface interface {
	Dashboard(ctx context.Context, restaurantID string) (DashboardView, error)
	Editable(ctx context.Context, restaurantID, dishID string) (domain.Dish, error)
	Menu(ctx context.Context, restaurantID string, filter domain.DishFilter) (MenuView, error)
	CreateDraft(ctx context.Context, restaurantID string, dish domain.Dish) (domain.ResponseDTO, error)
	UpdateDraft(ctx context.Context, restaurantID, dishID string, dish domain.Dish) (domain.ResponseDTO, error)
	SetPublished(ctx context.Context, restaurantID, dishID string, published bool) (domain.ResponseDTO, error)
	SetStock(ctx context.Context, restaurantID, dishID string, inStock bool) (domain.ResponseDTO, error)
	PublishAll(ctx context.Context, restaurantID string) (domain.ResponseDTO, error)
	SchedulePublishAll(ctx context.Context, restaurantID string, when time.Time) (domain.ResponseDTO, error)
	OpStatus(name string) OpStatus
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context) (string, error)
	Checkout(ctx context.Context, orderID string, form domain.CheckoutForm) error
	Order(ctx context.Context, orderID string) (domain.Order, error)
	RestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
	Timeline(ctx context.Context, orderID string) (TimelineView, error)
	Accept(ctx context.Context, restaurantID, orderID string) error
	Reject(ctx context.Context, restaurantID, orderID, reason string) error
	MarkReady(ctx context.Context, restaurantID, orderID string) error
	RefreshOrder(ctx context.Context, orderID string) (domain.Order, error)
	RefreshRestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
	TrackingQRCode(orderID string) ([]byte, error)
	WatchOrder(ctx context.Context, orderID string, fn func(domain.Order, error)) *query.Subscription
	WatchRestaurantOrders(ctx context.Context, restaurantID string, fn func([]domain.Order, error)) *query.Subscription
	OpStatus(name string) OpStatus
}

type RestaurantServiceInterface interface {
	HasOwnerRestaurant(ctx context.Context) (bool, error)
	OwnerRestaurant(ctx context.Context) (domain.Restaurant, error)
	Create(ctx context.Context, req domain.CreateRestaurantRequest) (domain.ResponseDTO, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, restaurantID string) (domain.Restaurant, error)
	OpenStatus(ctx context.Context, restaurantID string) (domain.OpenStatusDTO, error)
	SetOpenStatus(ctx context.Context, restaurantID string, status domain.OpenStatus) (domain.ResponseDTO, error)
	Availability(ctx context.Context, restaurantID string) (Availability, error)
	Browse(ctx context.Context) ([]Availability, error)
	OpStatus(name string) OpStatus
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req domain.RegisterOwnerRequest) error
	Login(ctx context.Context, req domain.LoginRequest) error
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
}

var (
	_ DishServiceInterface       = (*DishService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ AuthServiceInterface       = (*AuthService)(nil)
)
