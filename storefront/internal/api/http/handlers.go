package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"overcooked-client/storefront/internal/basket"
	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Dishes      service.DishServiceInterface
	Orders      service.OrderServiceInterface
	Restaurants service.RestaurantServiceInterface
	Auth        service.AuthServiceInterface
	Basket      service.BasketStore
	Metrics     http.Handler
}

func NewHandler(dishSvc service.DishServiceInterface, orderSvc service.OrderServiceInterface, restSvc service.RestaurantServiceInterface, authSvc service.AuthServiceInterface, basketStore service.BasketStore, metrics http.Handler) *Handler {
	return &Handler{
		Dishes:      dishSvc,
		Orders:      orderSvc,
		Restaurants: restSvc,
		Auth:        authSvc,
		Basket:      basketStore,
		Metrics:     metrics,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics).Methods("GET")
	}

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/session", h.session).Methods("GET")

	r.HandleFunc("/api/basket", h.getBasket).Methods("GET")
	r.HandleFunc("/api/basket", h.addToBasket).Methods("POST")
	r.HandleFunc("/api/basket", h.clearBasket).Methods("DELETE")
	r.HandleFunc("/api/basket/{dishId}", h.removeFromBasket).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}/timeline", h.getTimeline).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/watch", h.watchOrder).Methods("GET")

	r.HandleFunc("/api/owner/restaurant", h.getOwnerRestaurant).Methods("GET")
	r.HandleFunc("/api/owner/onboarded", h.getOnboarded).Methods("GET")

	r.HandleFunc("/api/restaurants", h.browseRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/availability", h.getAvailability).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/status", h.setOpenStatus).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/dashboard", h.getDashboard).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/restaurants/{id}/dishes", h.createDraft).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/dishes/publish-all", h.publishAll).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/dishes/schedule-publish", h.schedulePublish).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}", h.getEditableDish).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}", h.updateDraft).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}/published", h.setPublished).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}/stock", h.setStock).Methods("PATCH")

	r.HandleFunc("/api/restaurants/{id}/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders/watch", h.watchRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders/{orderId}/{action}", h.orderAction).Methods("POST")

	r.HandleFunc("/api/operations/{service}/{name}", h.getOperation).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	domain.ErrorResponseDTO
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// writeError answers in the backend's own error shape.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{ErrorResponseDTO: domain.ErrorResponseDTO{
		APIPath:      r.URL.Path,
		ErrorMessage: domain.Message(err),
		ErrorTime:    time.Now().Format("2006-01-02T15:04:05"),
	}}

	var (
		valErr *domain.ValidationError
		apiErr *domain.APIError
		netErr *domain.NetworkError
		status int
	)
	switch {
	case errors.As(err, &valErr):
		status, body.ErrorCode = http.StatusBadRequest, "VALIDATION_FAILED"
		body.Fields = valErr.Fields
	case errors.Is(err, service.ErrTogglePending):
		status, body.ErrorCode = http.StatusConflict, "CHANGE_PENDING"
	case errors.Is(err, domain.ErrUnauthorized):
		status, body.ErrorCode = http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotFound):
		status, body.ErrorCode = http.StatusNotFound, "NOT_FOUND"
	case errors.As(err, &apiErr):
		status, body.ErrorCode = http.StatusBadGateway, apiErr.Code
		// client mistakes the backend rejected are passed through
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			status = apiErr.Status
		}
	case errors.As(err, &netErr):
		status, body.ErrorCode = http.StatusBadGateway, "BACKEND_UNREACHABLE"
	default:
		status, body.ErrorCode = http.StatusInternalServerError, "INTERNAL_ERROR"
		log.Printf("[storefront] %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, body)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// auth

type registerBody struct {
	domain.RegisterOwnerRequest
	PasswordConfirmation string `json:"passwordConfirmation"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if !decode(w, r, &body) {
		return
	}
	req := body.RegisterOwnerRequest
	req.PasswordConfirmation = body.PasswordConfirmation
	if err := h.Auth.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"loggedIn": true})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.Auth.Login(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"loggedIn": true})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"loggedIn": h.Auth.LoggedIn(r.Context())})
}

// basket

type basketView struct {
	Items []domain.BasketItem `json:"items"`
	Total float64             `json:"total"`
	Count int                 `json:"count"`
}

func (h *Handler) writeBasket(w http.ResponseWriter, r *http.Request) {
	items, err := h.Basket.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.BasketItem{}
	}
	writeJSON(w, http.StatusOK, basketView{Items: items, Total: basket.Total(items), Count: basket.Count(items)})
}

func (h *Handler) getBasket(w http.ResponseWriter, r *http.Request) {
	h.writeBasket(w, r)
}

func (h *Handler) addToBasket(w http.ResponseWriter, r *http.Request) {
	var item domain.BasketItem
	if !decode(w, r, &item) {
		return
	}
	if err := h.Basket.Add(r.Context(), item); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeBasket(w, r)
}

func (h *Handler) removeFromBasket(w http.ResponseWriter, r *http.Request) {
	if err := h.Basket.Remove(r.Context(), mux.Vars(r)["dishId"]); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeBasket(w, r)
}

func (h *Handler) clearBasket(w http.ResponseWriter, r *http.Request) {
	if err := h.Basket.Clear(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeBasket(w, r)
}

// orders

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := h.Orders.PlaceOrder(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.OrderIDDTO{OrderID: orderID})
}

// wantsRefresh reports ?refresh=true, which bypasses cached reads.
func wantsRefresh(r *http.Request) bool {
	return r.URL.Query().Get("refresh") == "true"
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	var (
		order domain.Order
		err   error
	)
	if wantsRefresh(r) {
		order, err = h.Orders.RefreshOrder(r.Context(), orderID)
	} else {
		order, err = h.Orders.Order(r.Context(), orderID)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var form domain.CheckoutForm
	if !decode(w, r, &form) {
		return
	}
	if err := h.Orders.Checkout(r.Context(), mux.Vars(r)["id"], form); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.ResponseDTO{StatusCode: "200", StatusMsg: "Order checked out"})
}

func (h *Handler) getTimeline(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if wantsRefresh(r) {
		order, err := h.Orders.RefreshOrder(r.Context(), orderID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, service.NewTimelineView(order))
		return
	}

	view, err := h.Orders.Timeline(r.Context(), orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.TrackingQRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]
	var (
		orders []domain.Order
		err    error
	)
	if wantsRefresh(r) {
		orders, err = h.Orders.RefreshRestaurantOrders(r.Context(), restaurantID)
	} else {
		orders, err = h.Orders.RestaurantOrders(r.Context(), restaurantID)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) orderAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, orderID := vars["id"], vars["orderId"]

	var err error
	switch domain.OwnerAction(vars["action"]) {
	case domain.ActionAccept:
		err = h.Orders.Accept(r.Context(), restaurantID, orderID)
	case domain.ActionReady:
		err = h.Orders.MarkReady(r.Context(), restaurantID, orderID)
	case domain.ActionReject:
		var body struct {
			Reason string `json:"reason"`
		}
		if !decode(w, r, &body) {
			return
		}
		err = h.Orders.Reject(r.Context(), restaurantID, orderID, body.Reason)
	default:
		http.Error(w, "Unknown order action", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// restaurants

func (h *Handler) getOwnerRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.OwnerRestaurant(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getOnboarded(w http.ResponseWriter, r *http.Request) {
	has, err := h.Restaurants.HasOwnerRestaurant(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"hasRestaurant": has})
}

func (h *Handler) browseRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.Browse(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRestaurantRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.Restaurants.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.Restaurants.Availability(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}

func (h *Handler) setOpenStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.OpenStatusRequest
	if !decode(w, r, &req) {
		return
	}
	status := domain.OpenStatus(strings.ToUpper(string(req.Status)))
	resp, err := h.Restaurants.SetOpenStatus(r.Context(), mux.Vars(r)["id"], status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// dishes

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.Dishes.Dashboard(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.DishFilter{Type: q.Get("type"), Sort: q.Get("sort")}
	if tags := q.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	menu, err := h.Dishes.Menu(r.Context(), mux.Vars(r)["id"], filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getEditableDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dish, err := h.Dishes.Editable(r.Context(), vars["id"], vars["dishId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) createDraft(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if !decode(w, r, &dish) {
		return
	}
	resp, err := h.Dishes.CreateDraft(r.Context(), mux.Vars(r)["id"], dish)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var dish domain.Dish
	if !decode(w, r, &dish) {
		return
	}
	resp, err := h.Dishes.UpdateDraft(r.Context(), vars["id"], vars["dishId"], dish)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) setPublished(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req domain.PublishRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.Dishes.SetPublished(r.Context(), vars["id"], vars["dishId"], req.IsPublished)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) setStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req domain.StockRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.Dishes.SetStock(r.Context(), vars["id"], vars["dishId"], req.IsInStock)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) publishAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Dishes.PublishAll(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) schedulePublish(w http.ResponseWriter, r *http.Request) {
	var req domain.ScheduleRequest
	if !decode(w, r, &req) {
		return
	}
	var when time.Time
	if req.ScheduleTime != "" {
		parsed, ok := domain.ParseTimestamp(req.ScheduleTime)
		if !ok {
			writeError(w, r, domain.NewValidationError("scheduleTime", "must be an ISO-8601 timestamp"))
			return
		}
		when = parsed
	}
	resp, err := h.Dishes.SchedulePublishAll(r.Context(), mux.Vars(r)["id"], when)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getOperation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var status service.OpStatus
	switch vars["service"] {
	case "dishes":
		status = h.Dishes.OpStatus(vars["name"])
	case "orders":
		status = h.Orders.OpStatus(vars["name"])
	case "restaurants":
		status = h.Restaurants.OpStatus(vars["name"])
	default:
		http.Error(w, "Unknown service", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
