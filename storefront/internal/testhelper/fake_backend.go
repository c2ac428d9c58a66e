package testhelper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"overcooked-client/storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// FakeBackend is an in-memory stand-in for the REST backend, served over httptest.
type FakeBackend struct {
	*httptest.Server

	mu          sync.Mutex
	Token       string
	drafts      map[string]map[string]domain.Dish
	lives       map[string]map[string]domain.Dish
	restaurants map[string]domain.Restaurant
	owners      map[string]string
	openStatus  map[string]domain.OpenStatus
	orders      map[string]domain.Order
	calls       map[string]int
	FailNext    map[string]int
}

func NewFakeBackend() *FakeBackend {
	f := &FakeBackend{
		Token:       "test-token",
		drafts:      make(map[string]map[string]domain.Dish),
		lives:       make(map[string]map[string]domain.Dish),
		restaurants: make(map[string]domain.Restaurant),
		owners:      make(map[string]string),
		openStatus:  make(map[string]domain.OpenStatus),
		orders:      make(map[string]domain.Order),
		calls:       make(map[string]int),
		FailNext:    make(map[string]int),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", f.login).Methods("POST")
	r.HandleFunc("/api/auth/register", f.login).Methods("POST")
	r.HandleFunc("/api/owners/{ownerId}/restaurant", f.ownerRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants", f.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", f.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", f.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/open-status", f.getOpenStatus).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/status", f.authed(f.setOpenStatus)).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/dishes", f.listDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dishes", f.authed(f.createDraft)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/dishes/publish-all", f.authed(f.publishAll)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/dishes/schedule-publish", f.authed(f.schedulePublish)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}", f.getDish).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}", f.authed(f.updateDraft)).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}/published", f.authed(f.setPublished)).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/dishes/{dishId}/stock", f.authed(f.setStock)).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/{action}", f.authed(f.orderAction)).Methods("POST")
	r.HandleFunc("/api/orders", f.listOrders).Methods("GET")
	r.HandleFunc("/api/orders", f.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", f.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/checkout", f.checkout).Methods("POST")
	r.Use(f.count)

	f.Server = httptest.NewServer(r)
	return f
}

func (f *FakeBackend) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + routeTemplate(r)
		f.mu.Lock()
		f.calls[route]++
		fail := f.FailNext[route] > 0
		if fail {
			f.FailNext[route]--
		}
		f.mu.Unlock()

		if fail {
			writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

// Calls reports how many requests hit a route, e.g. "GET /api/restaurants/{id}/dishes".
func (f *FakeBackend) Calls(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

// Fail makes the next n requests to route answer 500.
func (f *FakeBackend) Fail(route string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailNext[route] = n
}

func (f *FakeBackend) AddRestaurant(ownerID string, restaurant domain.Restaurant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restaurants[restaurant.ID] = restaurant
	f.owners[ownerID] = restaurant.ID
}

func (f *FakeBackend) AddLive(restaurantID string, dish domain.Dish) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lives[restaurantID] == nil {
		f.lives[restaurantID] = make(map[string]domain.Dish)
	}
	f.lives[restaurantID][dish.ID] = dish
}

func (f *FakeBackend) SetOrderStatus(orderID string, status domain.OrderStatus, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := f.orders[orderID]
	order.OrderStatus = status
	order.StatusOccurredAt = time.Now().UTC().Format(time.RFC3339)
	switch status {
	case domain.StatusRejected:
		order.RejectedMsg = msg
	case domain.StatusDeclined:
		order.DeclinedMsg = msg
	}
	f.orders[orderID] = order
}

func (f *FakeBackend) Order(orderID string) (domain.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	return order, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, domain.ErrorResponseDTO{
		APIPath:      r.URL.Path,
		ErrorCode:    code,
		ErrorMessage: msg,
		ErrorTime:    time.Now().Format("2006-01-02T15:04:05"),
	})
}

func ok(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, domain.ResponseDTO{StatusCode: "200", StatusMsg: msg})
}

func (f *FakeBackend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.Token {
			writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid token")
			return
		}
		next(w, r)
	}
}

func (f *FakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, http.StatusOK, domain.JwtDTO{AccessToken: f.Token, ExpiresIn: 3600, UserID: "owner-" + req.Username, Username: req.Username})
}

func (f *FakeBackend) ownerRestaurant(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, found := f.owners[mux.Vars(r)["ownerId"]]
	if !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, f.restaurants[id])
}

func (f *FakeBackend) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	f.mu.Lock()
	id := uuid.NewString()
	f.restaurants[id] = domain.Restaurant{
		ID: id, Name: req.Name, Email: req.Email, Address: req.Address, ResPictureURL: req.ResPictureURL,
		DayOpeningHours: req.DayOpeningHoursMap, Cuisine: req.Cuisine, DefaultPrepTime: req.DefaultPrepTime,
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, domain.ResponseDTO{StatusCode: "201", StatusMsg: "Restaurant created"})
}

func (f *FakeBackend) listRestaurants(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Restaurant, 0, len(f.restaurants))
	for _, rest := range f.restaurants {
		out = append(out, rest)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) getRestaurant(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rest, found := f.restaurants[mux.Vars(r)["id"]]
	if !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (f *FakeBackend) getOpenStatus(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	status, found := f.openStatus[mux.Vars(r)["id"]]
	f.mu.Unlock()
	if !found {
		status = domain.OpenStatusAuto
	}
	writeJSON(w, http.StatusOK, map[string]string{"openStatus": string(status)})
}

func (f *FakeBackend) setOpenStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.OpenStatusRequest
	json.NewDecoder(r.Body).Decode(&req)
	f.mu.Lock()
	f.openStatus[mux.Vars(r)["id"]] = req.Status
	f.mu.Unlock()
	ok(w, "Status updated")
}

func (f *FakeBackend) projection(restaurantID string, state domain.DishState) map[string]domain.Dish {
	set := f.lives
	if state == domain.StateDraft {
		set = f.drafts
	}
	if set[restaurantID] == nil {
		set[restaurantID] = make(map[string]domain.Dish)
	}
	return set[restaurantID]
}

func (f *FakeBackend) listDishes(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dishes := f.projection(mux.Vars(r)["id"], domain.DishState(r.URL.Query().Get("state")))
	out := make([]domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) getDish(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vars := mux.Vars(r)
	dish, found := f.projection(vars["id"], domain.DishState(r.URL.Query().Get("state")))[vars["dishId"]]
	if !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Dish not found")
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (f *FakeBackend) createDraft(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	f.mu.Lock()
	dish.ID = uuid.NewString()
	f.projection(mux.Vars(r)["id"], domain.StateDraft)[dish.ID] = dish
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, domain.ResponseDTO{StatusCode: "201", StatusMsg: "Draft created"})
}

func (f *FakeBackend) updateDraft(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	drafts := f.projection(vars["id"], domain.StateDraft)
	if _, found := drafts[vars["dishId"]]; !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Draft not found")
		return
	}
	dish.ID = vars["dishId"]
	drafts[dish.ID] = dish
	ok(w, "Draft updated")
}

func (f *FakeBackend) setPublished(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req domain.PublishRequest
	json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	drafts := f.projection(vars["id"], domain.StateDraft)
	lives := f.projection(vars["id"], domain.StateLive)
	id := vars["dishId"]
	if !req.IsPublished {
		if live, found := lives[id]; found {
			if _, hasDraft := drafts[id]; !hasDraft {
				drafts[id] = live
			}
			delete(lives, id)
		}
		ok(w, "Dish unpublished")
		return
	}
	draft, found := drafts[id]
	if !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Draft not found")
		return
	}
	lives[id] = draft
	delete(drafts, id)
	ok(w, "Dish published")
}

func (f *FakeBackend) setStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req domain.StockRequest
	json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	id := vars["dishId"]
	for _, set := range []map[string]domain.Dish{f.projection(vars["id"], domain.StateDraft), f.projection(vars["id"], domain.StateLive)} {
		if dish, found := set[id]; found {
			inStock := req.IsInStock
			dish.IsInStock = &inStock
			set[id] = dish
		}
	}
	ok(w, "Stock updated")
}

func (f *FakeBackend) publishAll(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]
	f.mu.Lock()
	defer f.mu.Unlock()
	drafts := f.projection(restaurantID, domain.StateDraft)
	lives := f.projection(restaurantID, domain.StateLive)
	for id, dish := range drafts {
		dish.ScheduledTime = ""
		lives[id] = dish
		delete(drafts, id)
	}
	ok(w, "All dishes published")
}

func (f *FakeBackend) schedulePublish(w http.ResponseWriter, r *http.Request) {
	var req domain.ScheduleRequest
	json.NewDecoder(r.Body).Decode(&req)
	if _, err := time.Parse(time.RFC3339, req.ScheduleTime); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid schedule time")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	drafts := f.projection(mux.Vars(r)["id"], domain.StateDraft)
	for id, dish := range drafts {
		dish.ScheduledTime = req.ScheduleTime
		drafts[id] = dish
	}
	ok(w, "Publish scheduled")
}

func (f *FakeBackend) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Dishes) == 0 {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Order needs dishes")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var restaurantID string
	var total float64
	for rid, lives := range f.lives {
		for _, id := range req.Dishes {
			if dish, found := lives[id]; found {
				restaurantID = rid
				total += dish.Price
			}
		}
	}
	order := domain.Order{
		ID:               uuid.NewString(),
		OrderStatus:      domain.StatusPlaced,
		StatusOccurredAt: time.Now().UTC().Format(time.RFC3339),
		RestaurantID:     restaurantID,
		TotalPrice:       total,
		Dishes:           req.Dishes,
	}
	f.orders[order.ID] = order
	writeJSON(w, http.StatusCreated, domain.OrderIDDTO{OrderID: order.ID})
}

func (f *FakeBackend) listOrders(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	restaurantID := r.URL.Query().Get("resId")
	out := []domain.Order{}
	for _, order := range f.orders {
		if order.RestaurantID == restaurantID {
			out = append(out, order)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) getOrder(w http.ResponseWriter, r *http.Request) {
	order, found := f.Order(mux.Vars(r)["id"])
	if !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (f *FakeBackend) checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	order, found := f.orders[mux.Vars(r)["id"]]
	if !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	order.Customer = &domain.Customer{
		FirstName: req.FirstName, LastName: req.LastName, Email: req.Email,
		PhoneNumber: req.PhoneNumber, DeliveryAddress: req.DeliveryAddress,
	}
	f.orders[order.ID] = order
	ok(w, "Checkout complete")
}

func (f *FakeBackend) orderAction(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderActionRequest
	json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()
	order, found := f.orders[req.OrderID]
	if !found {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}

	var from, to domain.OrderStatus
	switch mux.Vars(r)["action"] {
	case "accept-order":
		from, to = domain.StatusPlaced, domain.StatusAccepted
	case "reject-order":
		from, to = domain.StatusPlaced, domain.StatusRejected
		order.RejectedMsg = req.Reason
	case "ready-order":
		from, to = domain.StatusAccepted, domain.StatusReadyForPickup
	default:
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "Unknown action")
		return
	}
	if order.OrderStatus != from {
		writeError(w, r, http.StatusConflict, "INVALID_STATE", "Order is "+strings.ToLower(string(order.OrderStatus)))
		return
	}
	order.OrderStatus = to
	order.StatusOccurredAt = time.Now().UTC().Format(time.RFC3339)
	f.orders[order.ID] = order
	ok(w, "Order updated")
}
