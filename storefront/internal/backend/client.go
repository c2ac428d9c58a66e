package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"overcooked-client/storefront/internal/domain"

	"github.com/google/uuid"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource hands out the bearer token and forgets it on rejection.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type Client struct {
	baseURL string
	client  HTTPClient
	tokens  TokenSource
}

func NewClient(baseURL string, client HTTPClient, tokens TokenSource) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		tokens:  tokens,
	}
}

type call struct {
	method string
	path   string
	query  url.Values
	body   any
	authed bool
}

func send[T any](ctx context.Context, c *Client, in call) (T, error) {
	var zero T

	target := c.baseURL + in.path
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}

	var body *bytes.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return zero, fmt.Errorf("encode %s %s: %w", in.method, in.path, err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target, body)
	if err != nil {
		return zero, fmt.Errorf("build %s %s: %w", in.method, in.path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if in.authed {
		if c.tokens == nil {
			return zero, domain.ErrUnauthorized
		}
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return zero, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return zero, &domain.NetworkError{Op: in.method + " " + in.path, Err: err}
	}
	defer resp.Body.Close()

	value, err := decodeResult[T](resp, in.path).Unwrap()
	if err != nil && errors.Is(err, domain.ErrUnauthorized) && c.tokens != nil {
		log.Printf("[storefront] %s %s rejected with 401, clearing session", in.method, in.path)
		if clearErr := c.tokens.Clear(ctx); clearErr != nil {
			log.Printf("WARNING: failed to clear session: %v", clearErr)
		}
	}
	return value, err
}

func seg(s string) string {
	return url.PathEscape(s)
}

// Auth

func (c *Client) Register(ctx context.Context, req domain.RegisterOwnerRequest) (domain.JwtDTO, error) {
	return send[domain.JwtDTO](ctx, c, call{method: http.MethodPost, path: "/api/auth/register", body: req})
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.JwtDTO, error) {
	return send[domain.JwtDTO](ctx, c, call{method: http.MethodPost, path: "/api/auth/login", body: req})
}

// Restaurants

func (c *Client) OwnerRestaurant(ctx context.Context, ownerID string) (domain.Restaurant, error) {
	return send[domain.Restaurant](ctx, c, call{method: http.MethodGet, path: "/api/owners/" + seg(ownerID) + "/restaurant"})
}

func (c *Client) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{method: http.MethodPost, path: "/api/restaurants", body: req, authed: true})
}

func (c *Client) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return send[[]domain.Restaurant](ctx, c, call{method: http.MethodGet, path: "/api/restaurants"})
}

func (c *Client) Restaurant(ctx context.Context, restaurantID string) (domain.Restaurant, error) {
	return send[domain.Restaurant](ctx, c, call{method: http.MethodGet, path: "/api/restaurants/" + seg(restaurantID)})
}

func (c *Client) OpenStatus(ctx context.Context, restaurantID string) (domain.OpenStatusDTO, error) {
	return send[domain.OpenStatusDTO](ctx, c, call{method: http.MethodGet, path: "/api/restaurants/" + seg(restaurantID) + "/open-status"})
}

func (c *Client) UpdateOpenStatus(ctx context.Context, restaurantID string, status domain.OpenStatus) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{
		method: http.MethodPatch,
		path:   "/api/restaurants/" + seg(restaurantID) + "/status",
		body:   domain.OpenStatusRequest{Status: status},
		authed: true,
	})
}

// Dishes

func dishesPath(restaurantID string) string {
	return "/api/restaurants/" + seg(restaurantID) + "/dishes"
}

func (c *Client) Dishes(ctx context.Context, restaurantID string, state domain.DishState) ([]domain.Dish, error) {
	return send[[]domain.Dish](ctx, c, call{
		method: http.MethodGet,
		path:   dishesPath(restaurantID),
		query:  url.Values{"state": {string(state)}},
	})
}

func (c *Client) Dish(ctx context.Context, restaurantID, dishID string, state domain.DishState) (domain.Dish, error) {
	return send[domain.Dish](ctx, c, call{
		method: http.MethodGet,
		path:   dishesPath(restaurantID) + "/" + seg(dishID),
		query:  url.Values{"state": {string(state)}},
	})
}

func (c *Client) CreateDraft(ctx context.Context, restaurantID string, dish domain.Dish) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{method: http.MethodPost, path: dishesPath(restaurantID), body: dish, authed: true})
}

func (c *Client) UpdateDraft(ctx context.Context, restaurantID, dishID string, dish domain.Dish) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{method: http.MethodPatch, path: dishesPath(restaurantID) + "/" + seg(dishID), body: dish, authed: true})
}

func (c *Client) SetPublished(ctx context.Context, restaurantID, dishID string, published bool) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{
		method: http.MethodPatch,
		path:   dishesPath(restaurantID) + "/" + seg(dishID) + "/published",
		body:   domain.PublishRequest{IsPublished: published},
		authed: true,
	})
}

func (c *Client) SetStock(ctx context.Context, restaurantID, dishID string, inStock bool) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{
		method: http.MethodPatch,
		path:   dishesPath(restaurantID) + "/" + seg(dishID) + "/stock",
		body:   domain.StockRequest{IsInStock: inStock},
		authed: true,
	})
}

func (c *Client) PublishAll(ctx context.Context, restaurantID string) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{method: http.MethodPost, path: dishesPath(restaurantID) + "/publish-all", authed: true})
}

func (c *Client) SchedulePublish(ctx context.Context, restaurantID string, when time.Time) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{
		method: http.MethodPost,
		path:   dishesPath(restaurantID) + "/schedule-publish",
		body:   domain.ScheduleRequest{ScheduleTime: when.Format(time.RFC3339)},
		authed: true,
	})
}

// Orders

func (c *Client) RestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return send[[]domain.Order](ctx, c, call{method: http.MethodGet, path: "/api/orders", query: url.Values{"resId": {restaurantID}}})
}

func (c *Client) Order(ctx context.Context, orderID string) (domain.Order, error) {
	return send[domain.Order](ctx, c, call{method: http.MethodGet, path: "/api/orders/" + seg(orderID)})
}

func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderIDDTO, error) {
	return send[domain.OrderIDDTO](ctx, c, call{method: http.MethodPost, path: "/api/orders", body: req})
}

func (c *Client) Checkout(ctx context.Context, orderID string, req domain.CheckoutRequest) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{method: http.MethodPost, path: "/api/orders/" + seg(orderID) + "/checkout", body: req})
}

func (c *Client) orderAction(ctx context.Context, restaurantID, action string, req domain.OrderActionRequest) (domain.ResponseDTO, error) {
	return send[domain.ResponseDTO](ctx, c, call{
		method: http.MethodPost,
		path:   "/api/restaurants/" + seg(restaurantID) + "/" + action,
		body:   req,
		authed: true,
	})
}

func (c *Client) AcceptOrder(ctx context.Context, restaurantID, orderID string) (domain.ResponseDTO, error) {
	return c.orderAction(ctx, restaurantID, "accept-order", domain.OrderActionRequest{OrderID: orderID})
}

func (c *Client) RejectOrder(ctx context.Context, restaurantID, orderID, reason string) (domain.ResponseDTO, error) {
	return c.orderAction(ctx, restaurantID, "reject-order", domain.OrderActionRequest{OrderID: orderID, Reason: reason})
}

func (c *Client) MarkOrderReady(ctx context.Context, restaurantID, orderID string) (domain.ResponseDTO, error) {
	return c.orderAction(ctx, restaurantID, "ready-order", domain.OrderActionRequest{OrderID: orderID})
}
