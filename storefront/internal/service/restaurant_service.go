package service

import (
	"context"
	"errors"
	"log"
	"time"

	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/query"

	"golang.org/x/sync/errgroup"
)

type Availability struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Mode       domain.OpenStatus `json:"mode"`
	Label      string            `json:"label"`
	Open       bool              `json:"open"`
}

type createRestaurantInput struct {
	OwnerID string
	Request domain.CreateRestaurantRequest
}

type openStatusInput struct {
	RestaurantID string
	Status       domain.OpenStatus
}

type RestaurantService struct {
	backend  RestaurantBackend
	session  SessionStore
	cache    *query.Client
	validate *Validator
	now      func() time.Time

	create        *query.Mutation[createRestaurantInput, domain.ResponseDTO]
	setOpenStatus *query.Mutation[openStatusInput, domain.ResponseDTO]
}

func NewRestaurantService(backend RestaurantBackend, session SessionStore, cache *query.Client, validate *Validator) *RestaurantService {
	s := &RestaurantService{
		backend:  backend,
		session:  session,
		cache:    cache,
		validate: validate,
		now:      time.Now,
	}

	s.create = query.NewMutation(cache, "create_restaurant",
		func(ctx context.Context, in createRestaurantInput) (domain.ResponseDTO, error) {
			return backend.CreateRestaurant(ctx, in.Request)
		},
		func(in createRestaurantInput, _ domain.ResponseDTO) []query.Key {
			return []query.Key{query.OwnerRestaurantKey(in.OwnerID), query.RestaurantsKey()}
		})

	s.setOpenStatus = query.NewMutation(cache, "set_open_status",
		func(ctx context.Context, in openStatusInput) (domain.ResponseDTO, error) {
			return backend.UpdateOpenStatus(ctx, in.RestaurantID, in.Status)
		},
		func(in openStatusInput, _ domain.ResponseDTO) []query.Key {
			return []query.Key{query.RestaurantStatusKey(in.RestaurantID)}
		})

	return s
}

func (s *RestaurantService) WithClock(now func() time.Time) *RestaurantService {
	s.now = now
	return s
}

func (s *RestaurantService) ownerRestaurant(ctx context.Context) (domain.Restaurant, error) {
	ownerID, err := s.session.UserID(ctx)
	if err != nil {
		return domain.Restaurant{}, err
	}
	return query.NewQuery(s.cache, query.OwnerRestaurantKey(ownerID), func(ctx context.Context) (domain.Restaurant, error) {
		return s.backend.OwnerRestaurant(ctx, ownerID)
	}).Get(ctx)
}

// HasOwnerRestaurant is false when the owner has not onboarded yet (404) and
// an error for any other failure.
func (s *RestaurantService) HasOwnerRestaurant(ctx context.Context) (bool, error) {
	_, err := s.ownerRestaurant(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RestaurantService) OwnerRestaurant(ctx context.Context) (domain.Restaurant, error) {
	return s.ownerRestaurant(ctx)
}

func (s *RestaurantService) Create(ctx context.Context, req domain.CreateRestaurantRequest) (domain.ResponseDTO, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.ResponseDTO{}, err
	}
	ownerID, err := s.session.UserID(ctx)
	if err != nil {
		return domain.ResponseDTO{}, err
	}
	return s.create.Do(ctx, createRestaurantInput{OwnerID: ownerID, Request: req})
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return query.NewQuery(s.cache, query.RestaurantsKey(), s.backend.ListRestaurants).Get(ctx)
}

func (s *RestaurantService) Get(ctx context.Context, restaurantID string) (domain.Restaurant, error) {
	return query.NewQuery(s.cache, query.RestaurantKey(restaurantID), func(ctx context.Context) (domain.Restaurant, error) {
		return s.backend.Restaurant(ctx, restaurantID)
	}).Get(ctx)
}

func (s *RestaurantService) OpenStatus(ctx context.Context, restaurantID string) (domain.OpenStatusDTO, error) {
	return query.NewQuery(s.cache, query.RestaurantStatusKey(restaurantID), func(ctx context.Context) (domain.OpenStatusDTO, error) {
		return s.backend.OpenStatus(ctx, restaurantID)
	}).Get(ctx)
}

func (s *RestaurantService) SetOpenStatus(ctx context.Context, restaurantID string, status domain.OpenStatus) (domain.ResponseDTO, error) {
	if !status.Valid() {
		return domain.ResponseDTO{}, domain.NewValidationError("status", "must be one of OPEN, CLOSE, AUTO")
	}
	return s.setOpenStatus.Do(ctx, openStatusInput{RestaurantID: restaurantID, Status: status})
}

func (s *RestaurantService) availability(ctx context.Context, restaurant domain.Restaurant) Availability {
	status, err := s.OpenStatus(ctx, restaurant.ID)
	if err != nil {
		// Decoration only: fall back to the weekly schedule.
		log.Printf("WARNING: open status for restaurant %s unavailable: %v", restaurant.ID, err)
		status = domain.OpenStatusDTO{Mode: domain.OpenStatusAuto}
	}
	mode := status.Mode
	if mode == "" {
		mode = domain.OpenStatusAuto
	}
	return Availability{
		Restaurant: restaurant,
		Mode:       mode,
		Label:      mode.Label(),
		Open:       domain.IsOpen(restaurant, status, s.now()),
	}
}

func (s *RestaurantService) Availability(ctx context.Context, restaurantID string) (Availability, error) {
	restaurant, err := s.Get(ctx, restaurantID)
	if err != nil {
		return Availability{}, err
	}
	return s.availability(ctx, restaurant), nil
}

// Browse lists restaurants with their open state, fetching statuses concurrently.
func (s *RestaurantService) Browse(ctx context.Context) ([]Availability, error) {
	restaurants, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Availability, len(restaurants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, r := range restaurants {
		i := i
		r := r
		g.Go(func() error {
			out[i] = s.availability(gctx, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RestaurantService) OpStatus(name string) OpStatus {
	return opStatus(map[string]statusReporter{
		"create_restaurant": s.create,
		"set_open_status":   s.setOpenStatus,
	}, name)
}
