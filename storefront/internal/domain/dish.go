package domain

import (
	"sort"
	"strings"
	"time"
)

const (
	DisplayDraftBasedOnLive = "DRAFT (based on LIVE)"
	DisplayDraft            = "DRAFT"
	DisplayLive             = "LIVE"
)

type DishWithMeta struct {
	Dish
	IsDraft        bool `json:"isDraft"`
	HasLiveVersion bool `json:"hasLiveVersion"`
}

func (d DishWithMeta) DisplayStatus() string {
	switch {
	case d.IsDraft && d.HasLiveVersion:
		return DisplayDraftBasedOnLive
	case d.IsDraft:
		return DisplayDraft
	default:
		return DisplayLive
	}
}

// MergeDishes lists every draft, then every live dish without a draft, sorted by name.
func MergeDishes(drafts, lives []Dish) []DishWithMeta {
	liveIDs := make(map[string]struct{}, len(lives))
	for _, l := range lives {
		liveIDs[l.ID] = struct{}{}
	}
	draftIDs := make(map[string]struct{}, len(drafts))

	merged := make([]DishWithMeta, 0, len(drafts)+len(lives))
	for _, d := range drafts {
		draftIDs[d.ID] = struct{}{}
		_, hasLive := liveIDs[d.ID]
		merged = append(merged, DishWithMeta{Dish: d, IsDraft: true, HasLiveVersion: hasLive})
	}
	for _, l := range lives {
		if _, shadowed := draftIDs[l.ID]; shadowed {
			continue
		}
		merged = append(merged, DishWithMeta{Dish: l})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return strings.ToLower(merged[i].Name) < strings.ToLower(merged[j].Name)
	})
	return merged
}

// NextScheduledPublish is the earliest scheduledTime across dishes.
// Dishes without a parseable schedule are ignored.
func NextScheduledPublish(dishes []DishWithMeta) *time.Time {
	var next *time.Time
	for _, d := range dishes {
		t, ok := ParseTimestamp(d.ScheduledTime)
		if !ok {
			continue
		}
		if next == nil || t.Before(*next) {
			tt := t
			next = &tt
		}
	}
	return next
}

// EditableDish picks the draft when present, otherwise the live version.
func EditableDish(draft, live *Dish) *Dish {
	if draft != nil {
		return draft
	}
	return live
}

const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

type DishFilter struct {
	Type string
	Tags []string
	Sort string
}

func (f DishFilter) matches(d Dish) bool {
	if f.Type != "" && d.DishType != f.Type {
		return false
	}
	for _, tag := range f.Tags {
		found := false
		for _, t := range d.FoodTags {
			if t == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply filters by type and by all selected tags, then sorts.
func (f DishFilter) Apply(dishes []Dish) []Dish {
	out := make([]Dish, 0, len(dishes))
	for _, d := range dishes {
		if f.matches(d) {
			out = append(out, d)
		}
	}

	var less func(a, b Dish) bool
	switch f.Sort {
	case SortPriceAsc:
		less = func(a, b Dish) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b Dish) bool { return a.Price > b.Price }
	case SortNameAsc:
		less = func(a, b Dish) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortNameDesc:
		less = func(a, b Dish) bool { return strings.ToLower(a.Name) > strings.ToLower(b.Name) }
	default:
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Facets returns the distinct dish types and food tags, in first-seen order.
func Facets(dishes []Dish) (types, tags []string) {
	seenType := map[string]bool{}
	seenTag := map[string]bool{}
	for _, d := range dishes {
		if d.DishType != "" && !seenType[d.DishType] {
			seenType[d.DishType] = true
			types = append(types, d.DishType)
		}
		for _, t := range d.FoodTags {
			if !seenTag[t] {
				seenTag[t] = true
				tags = append(tags, t)
			}
		}
	}
	return types, tags
}
