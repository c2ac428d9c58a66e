package tests

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"overcooked-client/storefront/internal/basket"
	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/mocks"
	"overcooked-client/storefront/internal/query"
	"overcooked-client/storefront/internal/service"
	"overcooked-client/storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validDish(name string) domain.Dish {
	return domain.Dish{
		Name:        name,
		DishType:    "MAIN",
		FoodTags:    []string{"VEGAN"},
		Description: "House special",
		Price:       12.5,
	}
}

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		FirstName: "Ada",
		LastName:  "Lovelace",
		DeliveryAddress: domain.Address{
			Street: "Main St", Number: "1", PostalCode: "1000", City: "Brussels", Country: "BE",
		},
		Email:       "ada@example.com",
		PhoneNumber: "+32 470 12 34 56",
		Payment:     domain.PaymentInput{Method: "cash"},
	}
}

func newBasket(t *testing.T, items ...domain.BasketItem) *basket.Store {
	t.Helper()
	store := basket.NewStore(storage.NewMemorySlot(), basket.NewNotifier())
	for _, it := range items {
		require.NoError(t, store.Add(context.Background(), it))
	}
	return store
}

func notFound() error {
	return &domain.APIError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Restaurant not found"}
}

func TestRestaurantService_HasOwnerRestaurant(t *testing.T) {
	tests := []struct {
		name      string
		mockRest  domain.Restaurant
		mockError error
		want      bool
		wantErr   bool
	}{
		{
			name:     "owner has a restaurant",
			mockRest: domain.Restaurant{ID: "r1", Name: "Luigi's"},
			want:     true,
		},
		{
			name:      "owner not onboarded yet",
			mockError: notFound(),
			want:      false,
		},
		{
			name:      "server failure is not mistaken for onboarding",
			mockError: &domain.APIError{Status: http.StatusInternalServerError, Message: "boom"},
			wantErr:   true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewRestaurantBackend(t)
			mockSession := mocks.NewSessionStore(t)
			svc := service.NewRestaurantService(mockBackend, mockSession, query.NewClient(nil), service.NewValidator())

			mockSession.On("UserID", mock.Anything).Return("owner-1", nil)
			mockBackend.On("OwnerRestaurant", mock.Anything, "owner-1").Return(testCase.mockRest, testCase.mockError).Once()

			got, err := svc.HasOwnerRestaurant(context.Background())

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestRestaurantService_CreateValidatesLocally(t *testing.T) {
	mockBackend := mocks.NewRestaurantBackend(t)
	mockSession := mocks.NewSessionStore(t)
	svc := service.NewRestaurantService(mockBackend, mockSession, query.NewClient(nil), service.NewValidator())

	_, err := svc.Create(context.Background(), domain.CreateRestaurantRequest{
		Name:               "Luigi's",
		Email:              "not-an-email",
		ResPictureURL:      "https://example.com/pic.png",
		DayOpeningHoursMap: map[string]domain.OpeningHours{"MONDAY": {Open: "09:00", Close: "17:00"}},
		Cuisine:            "ITALIAN",
		DefaultPrepTime:    5,
	})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := map[string]bool{}
	for _, f := range valErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["dayOpeningHoursMap"])
	assert.True(t, fields["defaultPrepTime"])
}

func TestRestaurantService_Availability(t *testing.T) {
	// Monday 12:00
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	restaurant := domain.Restaurant{
		ID: "r1",
		DayOpeningHours: map[string]domain.OpeningHours{
			"MONDAY": {Open: "09:00", Close: "17:00"},
		},
	}
	openFlag := false

	tests := []struct {
		name      string
		status    domain.OpenStatusDTO
		statusErr error
		wantMode  domain.OpenStatus
		wantOpen  bool
		wantLabel string
	}{
		{
			name:      "status unavailable falls back to schedule",
			statusErr: errors.New("connection refused"),
			wantMode:  domain.OpenStatusAuto,
			wantOpen:  true,
			wantLabel: domain.OpenStatusAuto.Label(),
		},
		{
			name:      "manual close overrides schedule",
			status:    domain.OpenStatusDTO{Mode: domain.OpenStatusClose},
			wantMode:  domain.OpenStatusClose,
			wantOpen:  false,
			wantLabel: domain.OpenStatusClose.Label(),
		},
		{
			name:      "server computed flag wins",
			status:    domain.OpenStatusDTO{Open: &openFlag},
			wantMode:  domain.OpenStatusAuto,
			wantOpen:  false,
			wantLabel: domain.OpenStatusAuto.Label(),
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewRestaurantBackend(t)
			svc := service.NewRestaurantService(mockBackend, mocks.NewSessionStore(t), query.NewClient(nil), service.NewValidator()).
				WithClock(func() time.Time { return now })

			mockBackend.On("Restaurant", mock.Anything, "r1").Return(restaurant, nil).Once()
			mockBackend.On("OpenStatus", mock.Anything, "r1").Return(testCase.status, testCase.statusErr).Once()

			got, err := svc.Availability(context.Background(), "r1")

			require.NoError(t, err)
			assert.Equal(t, testCase.wantMode, got.Mode)
			assert.Equal(t, testCase.wantOpen, got.Open)
			assert.Equal(t, testCase.wantLabel, got.Label)
		})
	}
}

func TestRestaurantService_SetOpenStatusRejectsUnknownMode(t *testing.T) {
	svc := service.NewRestaurantService(mocks.NewRestaurantBackend(t), mocks.NewSessionStore(t), query.NewClient(nil), service.NewValidator())

	_, err := svc.SetOpenStatus(context.Background(), "r1", domain.OpenStatus("MAYBE"))

	var valErr *domain.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestRestaurantService_Browse(t *testing.T) {
	mockBackend := mocks.NewRestaurantBackend(t)
	svc := service.NewRestaurantService(mockBackend, mocks.NewSessionStore(t), query.NewClient(nil), service.NewValidator())

	restaurants := []domain.Restaurant{{ID: "r1", Name: "A"}, {ID: "r2", Name: "B"}}
	mockBackend.On("ListRestaurants", mock.Anything).Return(restaurants, nil).Once()
	mockBackend.On("OpenStatus", mock.Anything, "r1").Return(domain.OpenStatusDTO{Mode: domain.OpenStatusOpen}, nil).Once()
	mockBackend.On("OpenStatus", mock.Anything, "r2").Return(domain.OpenStatusDTO{}, assert.AnError).Once()

	got, err := svc.Browse(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].Restaurant.ID)
	assert.True(t, got[0].Open)
	assert.Equal(t, domain.OpenStatusAuto, got[1].Mode)
}

func TestDishService_UpdateDraftValidation(t *testing.T) {
	tests := []struct {
		name      string
		dish      domain.Dish
		wantField string
	}{
		{
			name:      "missing name",
			dish:      validDish(""),
			wantField: "name",
		},
		{
			name:      "no tags",
			dish:      func() domain.Dish { d := validDish("Soup"); d.FoodTags = nil; return d }(),
			wantField: "foodTags",
		},
		{
			name:      "zero price",
			dish:      func() domain.Dish { d := validDish("Soup"); d.Price = 0; return d }(),
			wantField: "price",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewDishBackend(t)
			svc := service.NewDishService(mockBackend, query.NewClient(nil), service.NewToggleSet(), service.NewValidator())

			_, err := svc.UpdateDraft(context.Background(), "r1", "d1", testCase.dish)

			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, testCase.wantField, valErr.Fields[0].Field)
			mockBackend.AssertNotCalled(t, "UpdateDraft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDishService_Editable(t *testing.T) {
	draft := validDish("Soup (draft)")
	draft.ID = "d1"
	live := validDish("Soup")
	live.ID = "d1"

	tests := []struct {
		name      string
		draftErr  error
		setupLive func(*mocks.DishBackend)
		want      domain.Dish
		wantErr   bool
	}{
		{
			name:      "draft wins",
			setupLive: func(m *mocks.DishBackend) {},
			want:      draft,
		},
		{
			name:     "falls back to live when there is no draft",
			draftErr: notFound(),
			setupLive: func(m *mocks.DishBackend) {
				m.On("Dish", mock.Anything, "r1", "d1", domain.StateLive).Return(live, nil).Once()
			},
			want: live,
		},
		{
			name:      "other draft errors do not fall back",
			draftErr:  &domain.APIError{Status: http.StatusBadGateway, Message: "upstream"},
			setupLive: func(m *mocks.DishBackend) {},
			wantErr:   true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewDishBackend(t)
			svc := service.NewDishService(mockBackend, query.NewClient(nil), service.NewToggleSet(), service.NewValidator())

			mockBackend.On("Dish", mock.Anything, "r1", "d1", domain.StateDraft).Return(draft, testCase.draftErr).Once()
			testCase.setupLive(mockBackend)

			got, err := svc.Editable(context.Background(), "r1", "d1")

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestDishService_Dashboard(t *testing.T) {
	mockBackend := mocks.NewDishBackend(t)
	svc := service.NewDishService(mockBackend, query.NewClient(nil), service.NewToggleSet(), service.NewValidator())

	draft := validDish("Burger")
	draft.ID = "d1"
	draft.ScheduledTime = "2030-01-01T10:00:00"
	liveBurger := validDish("Burger")
	liveBurger.ID = "d1"
	outOfStock := false
	liveSoup := validDish("Soup")
	liveSoup.ID = "d2"
	liveSoup.IsInStock = &outOfStock

	mockBackend.On("Dishes", mock.Anything, "r1", domain.StateDraft).Return([]domain.Dish{draft}, nil).Once()
	mockBackend.On("Dishes", mock.Anything, "r1", domain.StateLive).Return([]domain.Dish{liveBurger, liveSoup}, nil).Once()

	view, err := svc.Dashboard(context.Background(), "r1")

	require.NoError(t, err)
	require.Len(t, view.Dishes, 2)
	assert.Equal(t, domain.DisplayDraftBasedOnLive, view.Dishes[0].Status)
	assert.True(t, view.Dishes[0].Published)
	assert.Equal(t, domain.DisplayLive, view.Dishes[1].Status)
	assert.False(t, view.Dishes[1].InStock)
	require.NotNil(t, view.NextScheduledPublish)
	assert.Equal(t, 2030, view.NextScheduledPublish.Year())

	// second load is served from cache
	_, err = svc.Dashboard(context.Background(), "r1")
	assert.NoError(t, err)
}

func TestDishService_InvalidationStaysWithinRestaurant(t *testing.T) {
	mockBackend := mocks.NewDishBackend(t)
	svc := service.NewDishService(mockBackend, query.NewClient(nil), service.NewToggleSet(), service.NewValidator())
	ctx := context.Background()

	mockBackend.On("Dishes", mock.Anything, "r1", mock.Anything).Return([]domain.Dish{}, nil).Times(4)
	mockBackend.On("Dishes", mock.Anything, "r2", mock.Anything).Return([]domain.Dish{}, nil).Times(2)
	mockBackend.On("PublishAll", mock.Anything, "r1").Return(domain.ResponseDTO{StatusCode: "200"}, nil).Once()

	_, err := svc.Dashboard(ctx, "r1")
	require.NoError(t, err)
	_, err = svc.Dashboard(ctx, "r2")
	require.NoError(t, err)

	_, err = svc.PublishAll(ctx, "r1")
	require.NoError(t, err)

	_, err = svc.Dashboard(ctx, "r1")
	require.NoError(t, err)
	_, err = svc.Dashboard(ctx, "r2")
	require.NoError(t, err)
}

func TestDishService_ToggleRollsBackOnFailure(t *testing.T) {
	mockBackend := mocks.NewDishBackend(t)
	toggles := service.NewToggleSet()
	svc := service.NewDishService(mockBackend, query.NewClient(nil), toggles, service.NewValidator())
	ctx := context.Background()

	mockBackend.On("SetStock", mock.Anything, "r1", "d1", false).Return(domain.ResponseDTO{}, assert.AnError).Once()

	toggles.Observe("r1/d1", service.ToggleStock, true)
	_, err := svc.SetStock(ctx, "r1", "d1", false)

	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, toggles.Value("r1/d1", service.ToggleStock, false))
	assert.False(t, toggles.Pending("r1/d1", service.ToggleStock))
	assert.True(t, svc.OpStatus("set_stock").IsError)
	assert.False(t, svc.OpStatus("set_stock").IsPending)
}

func TestDishService_ToggleRejectsSecondChangeWhilePending(t *testing.T) {
	mockBackend := mocks.NewDishBackend(t)
	svc := service.NewDishService(mockBackend, query.NewClient(nil), service.NewToggleSet(), service.NewValidator())
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	mockBackend.On("SetPublished", mock.Anything, "r1", "d1", true).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(domain.ResponseDTO{StatusCode: "200"}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := svc.SetPublished(ctx, "r1", "d1", true)
		done <- err
	}()
	<-started

	_, err := svc.SetPublished(ctx, "r1", "d1", false)
	assert.ErrorIs(t, err, service.ErrTogglePending)
	assert.True(t, svc.OpStatus("set_published").IsPending)

	close(release)
	assert.NoError(t, <-done)
}

func TestDishService_SchedulePublishAll(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		when     time.Time
		wantCall bool
		wantErr  bool
	}{
		{name: "missing time", when: time.Time{}, wantErr: true},
		{name: "time in the past", when: now.Add(-time.Minute), wantErr: true},
		{name: "future time", when: now.Add(time.Hour), wantCall: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewDishBackend(t)
			svc := service.NewDishService(mockBackend, query.NewClient(nil), service.NewToggleSet(), service.NewValidator()).
				WithClock(func() time.Time { return now })

			if testCase.wantCall {
				mockBackend.On("SchedulePublish", mock.Anything, "r1", testCase.when).Return(domain.ResponseDTO{StatusCode: "200"}, nil).Once()
			}

			_, err := svc.SchedulePublishAll(context.Background(), "r1", testCase.when)

			if testCase.wantErr {
				var valErr *domain.ValidationError
				assert.ErrorAs(t, err, &valErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.BasketItem
		want    []string
		wantErr bool
	}{
		{
			name:    "empty basket",
			wantErr: true,
		},
		{
			name: "one id per unit",
			items: []domain.BasketItem{
				{DishID: "d1", DishName: "Soup", DishPrice: 4, Quantity: 2},
				{DishID: "d2", DishName: "Bread", DishPrice: 1, Quantity: 1},
			},
			want: []string{"d1", "d1", "d2"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewOrderBackend(t)
			svc := service.NewOrderService(mockBackend, newBasket(t, testCase.items...), query.NewClient(nil), nil, nil, service.NewValidator(), service.OrderConfig{})

			if !testCase.wantErr {
				mockBackend.On("CreateOrder", mock.Anything, domain.CreateOrderRequest{Dishes: testCase.want}).
					Return(domain.OrderIDDTO{OrderID: "o1"}, nil).Once()
			}

			id, err := svc.PlaceOrder(context.Background())

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "o1", id)
		})
	}
}

func TestOrderService_Checkout(t *testing.T) {
	items := []domain.BasketItem{
		{DishID: "d1", DishName: "Soup", DishPrice: 4.5, Quantity: 2},
		{DishID: "d2", DishName: "Bread", DishPrice: 1, Quantity: 1},
	}

	tests := []struct {
		name         string
		mockError    error
		wantErr      bool
		wantBasketSz int
	}{
		{name: "success clears the basket", wantBasketSz: 0},
		{name: "failure keeps the basket", mockError: assert.AnError, wantErr: true, wantBasketSz: 2},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewOrderBackend(t)
			store := newBasket(t, items...)
			svc := service.NewOrderService(mockBackend, store, query.NewClient(nil), nil, nil, service.NewValidator(),
				service.OrderConfig{PaymentToken: "tok_test"})

			mockBackend.On("Order", mock.Anything, "o1").Return(domain.Order{ID: "o1", TotalPrice: 10}, nil).Once()
			mockBackend.On("Checkout", mock.Anything, "o1", mock.MatchedBy(func(req domain.CheckoutRequest) bool {
				return req.PaymentInfo.Method == "CASH" &&
					req.PaymentInfo.Amount == 10 &&
					req.PaymentInfo.PaymentToken == "tok_test" &&
					req.DeliveryAddress.City == "Brussels"
			})).Return(domain.ResponseDTO{StatusCode: "200"}, testCase.mockError).Once()

			err := svc.Checkout(context.Background(), "o1", validForm())

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			left, err := store.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, left, testCase.wantBasketSz)
		})
	}
}

func TestOrderService_CheckoutValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.CheckoutForm)
		wantField string
	}{
		{
			name:      "bad email",
			mutate:    func(f *domain.CheckoutForm) { f.Email = "nope" },
			wantField: "email",
		},
		{
			name:      "missing city",
			mutate:    func(f *domain.CheckoutForm) { f.DeliveryAddress.City = "" },
			wantField: "deliveryAddress.city",
		},
		{
			name:      "card payment without card number",
			mutate:    func(f *domain.CheckoutForm) { f.Payment = domain.PaymentInput{Method: "card", ExpiryDate: "12/29", CVV: "123"} },
			wantField: "paymentInfo.cardNumber",
		},
		{
			name: "malformed card number",
			mutate: func(f *domain.CheckoutForm) {
				f.Payment = domain.PaymentInput{Method: "card", CardNumber: "1234", ExpiryDate: "12/29", CVV: "123"}
			},
			wantField: "paymentInfo.cardNumber",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewOrderBackend(t)
			store := newBasket(t, domain.BasketItem{DishID: "d1", DishPrice: 3, Quantity: 1})
			svc := service.NewOrderService(mockBackend, store, query.NewClient(nil), nil, nil, service.NewValidator(), service.OrderConfig{})

			form := validForm()
			testCase.mutate(&form)
			err := svc.Checkout(context.Background(), "o1", form)

			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, testCase.wantField, valErr.Fields[0].Field)

			left, _ := store.List(context.Background())
			assert.Len(t, left, 1)
		})
	}
}

func TestOrderService_Timeline(t *testing.T) {
	mockBackend := mocks.NewOrderBackend(t)
	svc := service.NewOrderService(mockBackend, newBasket(t), query.NewClient(nil), nil, nil, service.NewValidator(), service.OrderConfig{})

	mockBackend.On("Order", mock.Anything, "o1").Return(domain.Order{
		ID:               "o1",
		OrderStatus:      domain.StatusAccepted,
		StatusOccurredAt: "2024-05-01T12:00:00",
	}, nil).Once()

	view, err := svc.Timeline(context.Background(), "o1")

	require.NoError(t, err)
	require.Len(t, view.Steps, 3)
	assert.Equal(t, domain.StatusAccepted, view.Steps[1].Status)
	assert.True(t, view.Steps[1].Current)
	assert.Equal(t, []domain.OwnerAction{domain.ActionReady}, view.Actions)
	assert.False(t, view.Terminal)
}

func TestOrderService_RejectNeedsReason(t *testing.T) {
	mockBackend := mocks.NewOrderBackend(t)
	svc := service.NewOrderService(mockBackend, newBasket(t), query.NewClient(nil), nil, nil, service.NewValidator(), service.OrderConfig{})

	err := svc.Reject(context.Background(), "r1", "o1", "  ")
	var valErr *domain.ValidationError
	assert.ErrorAs(t, err, &valErr)

	mockBackend.On("RejectOrder", mock.Anything, "r1", "o1", "Out of stock").Return(domain.ResponseDTO{StatusCode: "200"}, nil).Once()
	assert.NoError(t, svc.Reject(context.Background(), "r1", "o1", "Out of stock"))
}

func TestOrderService_WatchOrderPublishesStatusChanges(t *testing.T) {
	mockBackend := mocks.NewOrderBackend(t)
	mockPublisher := mocks.NewOrderPublisher(t)
	svc := service.NewOrderService(mockBackend, newBasket(t), query.NewClient(nil), mockPublisher, nil, service.NewValidator(),
		service.OrderConfig{OrderPollInterval: 10 * time.Millisecond})

	placed := domain.Order{ID: "o1", RestaurantID: "r1", OrderStatus: domain.StatusPlaced}
	accepted := domain.Order{ID: "o1", RestaurantID: "r1", OrderStatus: domain.StatusAccepted}
	mockBackend.On("Order", mock.Anything, "o1").Return(placed, nil).Once()
	mockBackend.On("Order", mock.Anything, "o1").Return(accepted, nil)

	published := make(chan domain.OrderStatusEvent, 1)
	mockPublisher.On("PublishOrderStatus", mock.Anything, mock.AnythingOfType("domain.OrderStatusEvent")).
		Run(func(args mock.Arguments) {
			published <- args.Get(1).(domain.OrderStatusEvent)
		}).
		Return(nil).Once()

	sub := svc.WatchOrder(context.Background(), "o1", nil)
	defer sub.Stop()

	select {
	case event := <-published:
		assert.Equal(t, service.EventOrderStatusChanged, event.Type)
		assert.Equal(t, domain.StatusPlaced, event.Previous)
		assert.Equal(t, domain.StatusAccepted, event.Current)
		assert.Equal(t, "r1", event.RestaurantID)
	case <-time.After(2 * time.Second):
		t.Fatal("no status change published")
	}
}

func TestOrderService_TrackingQRCode(t *testing.T) {
	svc := service.NewOrderService(mocks.NewOrderBackend(t), newBasket(t), query.NewClient(nil), nil,
		service.DefaultQRGenerator{BaseURL: "https://shop.example.com/"}, service.NewValidator(), service.OrderConfig{})

	png, err := svc.TrackingQRCode("o1")

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
	assert.Equal(t, "/order/o1/tracking", service.TrackingPath("o1"))
}

func TestOrderService_TrackingQRCodeUsesGenerator(t *testing.T) {
	mockQR := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(mocks.NewOrderBackend(t), newBasket(t), query.NewClient(nil), nil, mockQR, service.NewValidator(), service.OrderConfig{})

	mockQR.On("Generate", "o1").Return(nil, assert.AnError).Once()

	_, err := svc.TrackingQRCode("o1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthService_Login(t *testing.T) {
	jwtDTO := domain.JwtDTO{AccessToken: "tok", ExpiresIn: 3600, UserID: "u1", Username: "restaurateur"}

	tests := []struct {
		name      string
		req       domain.LoginRequest
		setupMock func(*mocks.AuthBackend, *mocks.SessionStore)
		wantErr   bool
	}{
		{
			name: "valid credentials",
			req:  domain.LoginRequest{Username: "restaurateur", Password: "secret"},
			setupMock: func(b *mocks.AuthBackend, s *mocks.SessionStore) {
				b.On("Login", mock.Anything, domain.LoginRequest{Username: "restaurateur", Password: "secret"}).Return(jwtDTO, nil).Once()
				s.On("Save", mock.Anything, jwtDTO).Return(nil).Once()
			},
		},
		{
			name:      "missing password never reaches the backend",
			req:       domain.LoginRequest{Username: "restaurateur"},
			setupMock: func(b *mocks.AuthBackend, s *mocks.SessionStore) {},
			wantErr:   true,
		},
		{
			name: "rejected credentials keep the session empty",
			req:  domain.LoginRequest{Username: "restaurateur", Password: "wrong"},
			setupMock: func(b *mocks.AuthBackend, s *mocks.SessionStore) {
				b.On("Login", mock.Anything, mock.Anything).
					Return(domain.JwtDTO{}, &domain.APIError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED"}).Once()
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			mockBackend := mocks.NewAuthBackend(t)
			mockSession := mocks.NewSessionStore(t)
			svc := service.NewAuthService(mockBackend, mockSession, service.NewValidator())

			testCase.setupMock(mockBackend, mockSession)

			err := svc.Login(context.Background(), testCase.req)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RegisterChecksPasswordConfirmation(t *testing.T) {
	svc := service.NewAuthService(mocks.NewAuthBackend(t), mocks.NewSessionStore(t), service.NewValidator())

	err := svc.Register(context.Background(), domain.RegisterOwnerRequest{
		FirstName:            "Ada",
		LastName:             "Lovelace",
		Email:                "ada@example.com",
		Username:             "adalovelace",
		PhoneNumber:          "0470123456",
		Password:             "secret",
		PasswordConfirmation: "secret2",
	})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must match password", valErr.Fields[0].Msg)
}

func TestAuthService_Logout(t *testing.T) {
	mockSession := mocks.NewSessionStore(t)
	svc := service.NewAuthService(mocks.NewAuthBackend(t), mockSession, service.NewValidator())

	mockSession.On("Clear", mock.Anything).Return(nil).Once()
	mockSession.On("LoggedIn", mock.Anything).Return(false).Once()

	assert.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.LoggedIn(context.Background()))
}

func TestOrderService_CheckoutChargesTotalAtPlacement(t *testing.T) {
	mockBackend := mocks.NewOrderBackend(t)
	store := newBasket(t, domain.BasketItem{DishID: "d1", DishName: "Soup", DishPrice: 4, Quantity: 2})
	svc := service.NewOrderService(mockBackend, store, query.NewClient(nil), nil, nil, service.NewValidator(), service.OrderConfig{})

	mockBackend.On("CreateOrder", mock.Anything, domain.CreateOrderRequest{Dishes: []string{"d1", "d1"}}).
		Return(domain.OrderIDDTO{OrderID: "o1"}, nil).Once()
	mockBackend.On("Checkout", mock.Anything, "o1", mock.MatchedBy(func(req domain.CheckoutRequest) bool {
		return req.PaymentInfo.Amount == 8
	})).Return(domain.ResponseDTO{StatusCode: "200"}, nil).Once()

	orderID, err := svc.PlaceOrder(context.Background())
	require.NoError(t, err)

	// basket edited after the order went out
	require.NoError(t, store.Add(context.Background(), domain.BasketItem{DishID: "d2", DishName: "Bread", DishPrice: 3, Quantity: 1}))

	require.NoError(t, svc.Checkout(context.Background(), orderID, validForm()))
}

func TestOrderService_CheckoutSucceedsWhenCallerLeaves(t *testing.T) {
	mockBackend := mocks.NewOrderBackend(t)
	store := newBasket(t, domain.BasketItem{DishID: "d1", DishName: "Soup", DishPrice: 4, Quantity: 1})
	cache := query.NewClient(nil)
	svc := service.NewOrderService(mockBackend, store, cache, nil, nil, service.NewValidator(), service.OrderConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockBackend.On("Order", mock.Anything, "o1").Return(domain.Order{ID: "o1", TotalPrice: 4}, nil)
	mockBackend.On("Checkout", mock.Anything, "o1", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(domain.ResponseDTO{StatusCode: "200"}, nil).Once()

	err := svc.Checkout(ctx, "o1", validForm())

	require.NoError(t, err)
	assert.False(t, svc.OpStatus("checkout").IsError)
	left, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestOrderService_WatchersShareStatusTracking(t *testing.T) {
	mockBackend := mocks.NewOrderBackend(t)
	mockPublisher := mocks.NewOrderPublisher(t)
	svc := service.NewOrderService(mockBackend, newBasket(t), query.NewClient(nil), mockPublisher, nil, service.NewValidator(),
		service.OrderConfig{OrderPollInterval: time.Hour})

	placed := domain.Order{ID: "o1", RestaurantID: "r1", OrderStatus: domain.StatusPlaced}
	accepted := domain.Order{ID: "o1", RestaurantID: "r1", OrderStatus: domain.StatusAccepted}
	mockBackend.On("Order", mock.Anything, "o1").Return(placed, nil).Times(2)
	mockBackend.On("Order", mock.Anything, "o1").Return(accepted, nil)

	var published atomic.Int32
	mockPublisher.On("PublishOrderStatus", mock.Anything, mock.AnythingOfType("domain.OrderStatusEvent")).
		Run(func(mock.Arguments) { published.Add(1) }).
		Return(nil)

	watch := func() (*query.Subscription, chan domain.OrderStatus) {
		seen := make(chan domain.OrderStatus, 4)
		sub := svc.WatchOrder(context.Background(), "o1", func(order domain.Order, err error) {
			if err == nil {
				seen <- order.OrderStatus
			}
		})
		return sub, seen
	}
	next := func(seen chan domain.OrderStatus) domain.OrderStatus {
		select {
		case status := <-seen:
			return status
		case <-time.After(2 * time.Second):
			t.Fatal("watcher saw no update")
			return ""
		}
	}

	first, firstSeen := watch()
	defer first.Stop()
	require.Equal(t, domain.StatusPlaced, next(firstSeen))

	second, secondSeen := watch()
	defer second.Stop()
	require.Equal(t, domain.StatusPlaced, next(secondSeen))

	first.Refresh()
	require.Equal(t, domain.StatusAccepted, next(firstSeen))
	second.Refresh()
	require.Equal(t, domain.StatusAccepted, next(secondSeen))

	assert.Equal(t, int32(1), published.Load())
}

func TestOrderService_ReadsReloadAfterPollInterval(t *testing.T) {
	mockBackend := mocks.NewOrderBackend(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := query.NewClient(nil).WithClock(func() time.Time { return now })
	svc := service.NewOrderService(mockBackend, newBasket(t), cache, nil, nil, service.NewValidator(),
		service.OrderConfig{OrderPollInterval: 3 * time.Second, OrdersPollInterval: 5 * time.Second})

	mockBackend.On("Order", mock.Anything, "o1").Return(domain.Order{ID: "o1", OrderStatus: domain.StatusPlaced}, nil).Once()
	mockBackend.On("Order", mock.Anything, "o1").Return(domain.Order{ID: "o1", OrderStatus: domain.StatusAccepted}, nil)
	mockBackend.On("RestaurantOrders", mock.Anything, "r1").Return([]domain.Order{{ID: "o1", OrderStatus: domain.StatusPlaced}}, nil).Once()
	mockBackend.On("RestaurantOrders", mock.Anything, "r1").Return([]domain.Order{{ID: "o1", OrderStatus: domain.StatusAccepted}}, nil)

	view, err := svc.Timeline(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, view.Order.OrderStatus)
	orders, err := svc.RestaurantOrders(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, orders[0].OrderStatus)

	now = now.Add(time.Second)
	view, err = svc.Timeline(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, view.Order.OrderStatus, "fresh value comes from cache")

	now = now.Add(3 * time.Second)
	view, err = svc.Timeline(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, view.Order.OrderStatus)
	orders, err = svc.RestaurantOrders(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, orders[0].OrderStatus, "order list keeps its longer interval")

	refreshed, err := svc.RefreshRestaurantOrders(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, refreshed[0].OrderStatus)
}
