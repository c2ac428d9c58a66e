package query

import (
	"net/url"
	"strings"

	"overcooked-client/storefront/internal/domain"
)

// Key identifies one cached query as (entity, scope, params...).
type Key []string

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, p := range k {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func (k Key) Entity() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

// HasPrefix matches whole parts only, so dishes/live/r1 does not cover dishes/live/r10.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

func DishesKey(state domain.DishState, restaurantID string) Key {
	return Key{"dishes", string(state), restaurantID}
}

func DishKey(restaurantID, dishID string, state domain.DishState) Key {
	return Key{"dish", restaurantID, dishID, string(state)}
}

// RestaurantDishesKey is the prefix of every single-dish key of one restaurant.
func RestaurantDishesKey(restaurantID string) Key {
	return Key{"dish", restaurantID}
}

func OrdersKey(restaurantID string) Key {
	return Key{"orders", restaurantID}
}

func OrderKey(orderID string) Key {
	return Key{"order", orderID}
}

func RestaurantKey(restaurantID string) Key {
	return Key{"restaurant", restaurantID}
}

func OwnerRestaurantKey(ownerID string) Key {
	return Key{"owner-restaurant", ownerID}
}

func RestaurantsKey() Key {
	return Key{"restaurants"}
}

func RestaurantStatusKey(restaurantID string) Key {
	return Key{"restaurant-status", restaurantID}
}
