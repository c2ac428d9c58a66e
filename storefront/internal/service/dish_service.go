package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/query"

	"golang.org/x/sync/errgroup"
)

type DashboardDish struct {
	domain.DishWithMeta
	Status    string `json:"status"`
	Published bool   `json:"published"`
	InStock   bool   `json:"inStock"`
	Pending   bool   `json:"pending"`
}

type DashboardView struct {
	Dishes               []DashboardDish `json:"dishes"`
	NextScheduledPublish *time.Time      `json:"nextScheduledPublish,omitempty"`
}

type MenuView struct {
	Dishes []domain.Dish `json:"dishes"`
	Types  []string      `json:"types"`
	Tags   []string      `json:"tags"`
}

type draftInput struct {
	RestaurantID string
	DishID       string
	Dish         domain.Dish
}

type toggleInput struct {
	RestaurantID string
	DishID       string
	Value        bool
}

type scheduleInput struct {
	RestaurantID string
	When         time.Time
}

func dishLists(restaurantID string) []query.Key {
	return []query.Key{
		query.DishesKey(domain.StateDraft, restaurantID),
		query.DishesKey(domain.StateLive, restaurantID),
	}
}

// dishState covers the lists and every cached single dish of the restaurant,
// for writes that can move a dish between draft and live.
func dishState(restaurantID string) []query.Key {
	return append(dishLists(restaurantID), query.RestaurantDishesKey(restaurantID))
}

type DishService struct {
	backend  DishBackend
	cache    *query.Client
	toggles  *ToggleSet
	validate *Validator
	now      func() time.Time

	createDraft  *query.Mutation[draftInput, domain.ResponseDTO]
	updateDraft  *query.Mutation[draftInput, domain.ResponseDTO]
	setPublished *query.Mutation[toggleInput, domain.ResponseDTO]
	setStock     *query.Mutation[toggleInput, domain.ResponseDTO]
	publishAll   *query.Mutation[string, domain.ResponseDTO]
	schedule     *query.Mutation[scheduleInput, domain.ResponseDTO]
	ops          map[string]statusReporter
}

func NewDishService(backend DishBackend, cache *query.Client, toggles *ToggleSet, validate *Validator) *DishService {
	s := &DishService{
		backend:  backend,
		cache:    cache,
		toggles:  toggles,
		validate: validate,
		now:      time.Now,
	}

	s.createDraft = query.NewMutation(cache, "create_draft",
		func(ctx context.Context, in draftInput) (domain.ResponseDTO, error) {
			return backend.CreateDraft(ctx, in.RestaurantID, in.Dish)
		},
		func(in draftInput, _ domain.ResponseDTO) []query.Key {
			return dishLists(in.RestaurantID)
		})

	s.updateDraft = query.NewMutation(cache, "update_draft",
		func(ctx context.Context, in draftInput) (domain.ResponseDTO, error) {
			return backend.UpdateDraft(ctx, in.RestaurantID, in.DishID, in.Dish)
		},
		func(in draftInput, _ domain.ResponseDTO) []query.Key {
			return append([]query.Key{query.DishKey(in.RestaurantID, in.DishID, domain.StateDraft)}, dishLists(in.RestaurantID)...)
		})

	s.setPublished = query.NewMutation(cache, "set_published",
		func(ctx context.Context, in toggleInput) (domain.ResponseDTO, error) {
			return backend.SetPublished(ctx, in.RestaurantID, in.DishID, in.Value)
		},
		func(in toggleInput, _ domain.ResponseDTO) []query.Key {
			return dishState(in.RestaurantID)
		})

	s.setStock = query.NewMutation(cache, "set_stock",
		func(ctx context.Context, in toggleInput) (domain.ResponseDTO, error) {
			return backend.SetStock(ctx, in.RestaurantID, in.DishID, in.Value)
		},
		func(in toggleInput, _ domain.ResponseDTO) []query.Key {
			return dishState(in.RestaurantID)
		})

	s.publishAll = query.NewMutation(cache, "publish_all",
		func(ctx context.Context, restaurantID string) (domain.ResponseDTO, error) {
			return backend.PublishAll(ctx, restaurantID)
		},
		func(restaurantID string, _ domain.ResponseDTO) []query.Key {
			return dishState(restaurantID)
		})

	s.schedule = query.NewMutation(cache, "schedule_publish_all",
		func(ctx context.Context, in scheduleInput) (domain.ResponseDTO, error) {
			return backend.SchedulePublish(ctx, in.RestaurantID, in.When)
		},
		func(in scheduleInput, _ domain.ResponseDTO) []query.Key {
			return dishState(in.RestaurantID)
		})

	s.ops = map[string]statusReporter{
		"create_draft":         s.createDraft,
		"update_draft":         s.updateDraft,
		"set_published":        s.setPublished,
		"set_stock":            s.setStock,
		"publish_all":          s.publishAll,
		"schedule_publish_all": s.schedule,
	}
	return s
}

// WithClock replaces the time source used to reject past schedules.
func (s *DishService) WithClock(now func() time.Time) *DishService {
	s.now = now
	return s
}

func (s *DishService) dishesQuery(restaurantID string, state domain.DishState) *query.Query[[]domain.Dish] {
	return query.NewQuery(s.cache, query.DishesKey(state, restaurantID), func(ctx context.Context) ([]domain.Dish, error) {
		return s.backend.Dishes(ctx, restaurantID, state)
	})
}

func (s *DishService) dishQuery(restaurantID, dishID string, state domain.DishState) *query.Query[domain.Dish] {
	return query.NewQuery(s.cache, query.DishKey(restaurantID, dishID, state), func(ctx context.Context) (domain.Dish, error) {
		return s.backend.Dish(ctx, restaurantID, dishID, state)
	})
}

func toggleID(restaurantID, dishID string) string {
	return restaurantID + "/" + dishID
}

// Dashboard loads drafts and live dishes concurrently and merges them for the owner view.
func (s *DishService) Dashboard(ctx context.Context, restaurantID string) (DashboardView, error) {
	var drafts, lives []domain.Dish

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		drafts, err = s.dishesQuery(restaurantID, domain.StateDraft).Get(gctx)
		if err != nil {
			return fmt.Errorf("load draft dishes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		lives, err = s.dishesQuery(restaurantID, domain.StateLive).Get(gctx)
		if err != nil {
			return fmt.Errorf("load live dishes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardView{}, err
	}

	merged := domain.MergeDishes(drafts, lives)
	view := DashboardView{
		Dishes:               make([]DashboardDish, 0, len(merged)),
		NextScheduledPublish: domain.NextScheduledPublish(merged),
	}
	for _, d := range merged {
		id := toggleID(restaurantID, d.ID)
		published := !d.IsDraft || d.HasLiveVersion
		s.toggles.Observe(id, TogglePublished, published)
		s.toggles.Observe(id, ToggleStock, d.InStock())

		view.Dishes = append(view.Dishes, DashboardDish{
			DishWithMeta: d,
			Status:       d.DisplayStatus(),
			Published:    s.toggles.Value(id, TogglePublished, published),
			InStock:      s.toggles.Value(id, ToggleStock, d.InStock()),
			Pending:      s.toggles.Pending(id, TogglePublished) || s.toggles.Pending(id, ToggleStock),
		})
	}
	return view, nil
}

// Editable returns the draft when one exists and only then falls back to live.
func (s *DishService) Editable(ctx context.Context, restaurantID, dishID string) (domain.Dish, error) {
	draft, err := s.dishQuery(restaurantID, dishID, domain.StateDraft).Get(ctx)
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Dish{}, err
	}

	live, err := s.dishQuery(restaurantID, dishID, domain.StateLive).Get(ctx)
	if err != nil {
		return domain.Dish{}, err
	}
	return live, nil
}

func (s *DishService) Menu(ctx context.Context, restaurantID string, filter domain.DishFilter) (MenuView, error) {
	lives, err := s.dishesQuery(restaurantID, domain.StateLive).Get(ctx)
	if err != nil {
		return MenuView{}, err
	}
	types, tags := domain.Facets(lives)
	return MenuView{Dishes: filter.Apply(lives), Types: types, Tags: tags}, nil
}

func (s *DishService) CreateDraft(ctx context.Context, restaurantID string, dish domain.Dish) (domain.ResponseDTO, error) {
	if err := s.validate.Struct(dish); err != nil {
		return domain.ResponseDTO{}, err
	}
	return s.createDraft.Do(ctx, draftInput{RestaurantID: restaurantID, Dish: dish})
}

func (s *DishService) UpdateDraft(ctx context.Context, restaurantID, dishID string, dish domain.Dish) (domain.ResponseDTO, error) {
	if err := s.validate.Struct(dish); err != nil {
		return domain.ResponseDTO{}, err
	}
	dish.ID = dishID
	return s.updateDraft.Do(ctx, draftInput{RestaurantID: restaurantID, DishID: dishID, Dish: dish})
}

func (s *DishService) SetPublished(ctx context.Context, restaurantID, dishID string, published bool) (domain.ResponseDTO, error) {
	return s.toggle(ctx, s.setPublished, TogglePublished, toggleInput{RestaurantID: restaurantID, DishID: dishID, Value: published})
}

func (s *DishService) SetStock(ctx context.Context, restaurantID, dishID string, inStock bool) (domain.ResponseDTO, error) {
	return s.toggle(ctx, s.setStock, ToggleStock, toggleInput{RestaurantID: restaurantID, DishID: dishID, Value: inStock})
}

func (s *DishService) toggle(ctx context.Context, m *query.Mutation[toggleInput, domain.ResponseDTO], field ToggleField, in toggleInput) (domain.ResponseDTO, error) {
	id := toggleID(in.RestaurantID, in.DishID)
	if err := s.toggles.Begin(id, field, in.Value); err != nil {
		return domain.ResponseDTO{}, err
	}

	resp, err := m.Do(ctx, in)
	if err != nil {
		s.toggles.Rollback(id, field)
		log.Printf("[storefront] %s toggle for dish %s rolled back: %v", field, in.DishID, err)
		return domain.ResponseDTO{}, err
	}
	s.toggles.Commit(id, field)
	return resp, nil
}

// PublishAll is all-or-nothing: one backend call, one outcome.
func (s *DishService) PublishAll(ctx context.Context, restaurantID string) (domain.ResponseDTO, error) {
	return s.publishAll.Do(ctx, restaurantID)
}

func (s *DishService) SchedulePublishAll(ctx context.Context, restaurantID string, when time.Time) (domain.ResponseDTO, error) {
	if when.IsZero() {
		return domain.ResponseDTO{}, domain.NewValidationError("scheduleTime", "is required")
	}
	if !when.After(s.now()) {
		return domain.ResponseDTO{}, domain.NewValidationError("scheduleTime", "must be in the future")
	}
	return s.schedule.Do(ctx, scheduleInput{RestaurantID: restaurantID, When: when})
}

func (s *DishService) OpStatus(name string) OpStatus {
	return opStatus(s.ops, name)
}
