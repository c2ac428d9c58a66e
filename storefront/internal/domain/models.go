package domain

import (
	"strings"
	"time"
)

type DishState string

const (
	StateDraft DishState = "draft"
	StateLive  DishState = "live"
)

func (s DishState) Valid() bool {
	return s == StateDraft || s == StateLive
}

type Dish struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" validate:"required"`
	DishType      string   `json:"dishType" validate:"required"`
	FoodTags      []string `json:"foodTags" validate:"min=1,dive,required"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"gt=0"`
	PictureURL    string   `json:"pictureUrl"`
	IsInStock     *bool    `json:"isInStock,omitempty"`
	ScheduledTime string   `json:"scheduledTime,omitempty"`
}

// InStock treats a missing flag as in stock.
func (d Dish) InStock() bool {
	return d.IsInStock == nil || *d.IsInStock
}

type Address struct {
	Street     string `json:"street" validate:"required"`
	Number     string `json:"number" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	City       string `json:"city" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type OpeningHours struct {
	Open  string `json:"open" validate:"required,vhhmm"`
	Close string `json:"close" validate:"required,vhhmm"`
}

type Owner struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type Restaurant struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Email               string                  `json:"email"`
	Address             Address                 `json:"address"`
	ResPictureURL       string                  `json:"resPictureUrl"`
	DayOpeningHours     map[string]OpeningHours `json:"dayOpeningHours"`
	Cuisine             string                  `json:"cuisine"`
	DefaultPrepTime     int                     `json:"defaultPrepTime"`
	Owner               Owner                   `json:"owner"`
	HasScheduledPublish bool                    `json:"hasScheduledPublish,omitempty"`
}

type Customer struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber"`
	DeliveryAddress Address `json:"deliveryAddress"`
}

type Order struct {
	ID               string      `json:"id"`
	OrderStatus      OrderStatus `json:"orderStatus"`
	StatusOccurredAt string      `json:"statusOccurredAt"`
	RejectedMsg      string      `json:"rejectedMsg"`
	DeclinedMsg      string      `json:"declinedMsg"`
	RestaurantID     string      `json:"restaurantId"`
	TotalPrice       float64     `json:"totalPrice"`
	Dishes           []string    `json:"dishes"`
	Customer         *Customer   `json:"customer,omitempty"`
}

type BasketItem struct {
	DishID    string  `json:"dishId" validate:"required"`
	DishName  string  `json:"dishName"`
	DishPrice float64 `json:"dishPrice" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
}

// OrderStatusEvent is emitted when a watched order changes status.
type OrderStatusEvent struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	RestaurantID string      `json:"restaurant_id"`
	Previous     OrderStatus `json:"previous,omitempty"`
	Current      OrderStatus `json:"current"`
	OccurredAt   string      `json:"occurred_at"`
	Timestamp    time.Time   `json:"timestamp"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp accepts RFC 3339 and zone-less ISO-8601 timestamps.
// Zone-less values are read in the local zone.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
