package service

import (
	"testing"

	"overcooked-client/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week() map[string]domain.OpeningHours {
	hours := make(map[string]domain.OpeningHours, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		hours[day] = domain.OpeningHours{Open: "09:00", Close: "22:00"}
	}
	return hours
}

func TestValidator_Formats(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     any
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid card payment",
			input: domain.PaymentInput{Method: "CARD", CardNumber: "4111 1111 1111 1111", ExpiryDate: "12/29", CVV: "123"},
		},
		{
			name:  "cash needs no card",
			input: domain.PaymentInput{Method: "CASH"},
		},
		{
			name:      "expiry month out of range",
			input:     domain.PaymentInput{Method: "CARD", CardNumber: "4111111111111111", ExpiryDate: "13/29", CVV: "123"},
			wantField: "expiryDate",
			wantMsg:   "must be a valid expiry date (MM/YY)",
		},
		{
			name:      "cvv too short",
			input:     domain.PaymentInput{Method: "CARD", CardNumber: "4111-1111-1111-1111", ExpiryDate: "0129", CVV: "12"},
			wantField: "cvv",
			wantMsg:   "must be 3 or 4 digits",
		},
		{
			name:      "card fields required for card payments",
			input:     domain.PaymentInput{Method: "CARD", CardNumber: "4111111111111111", ExpiryDate: "12/29"},
			wantField: "cvv",
			wantMsg:   "is required for card payments",
		},
		{
			name:      "opening hours use HH:MM",
			input:     domain.OpeningHours{Open: "9am", Close: "22:00"},
			wantField: "open",
			wantMsg:   "must be a time in HH:MM format",
		},
		{
			name:      "missing username",
			input:     domain.LoginRequest{Username: "", Password: "x"},
			wantField: "username",
			wantMsg:   "is required",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			err := v.Struct(testCase.input)

			if testCase.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Len(t, valErr.Fields, 1)
			assert.Equal(t, testCase.wantField, valErr.Fields[0].Field)
			assert.Equal(t, testCase.wantMsg, valErr.Fields[0].Msg)
		})
	}
}

func TestValidator_RestaurantNeedsFullWeek(t *testing.T) {
	v := NewValidator()
	req := domain.CreateRestaurantRequest{
		Name:               "Luigi's",
		Email:              "luigi@example.com",
		Address:            domain.Address{Street: "Via Roma", Number: "3", PostalCode: "00100", City: "Rome", Country: "IT"},
		ResPictureURL:      "https://example.com/luigi.png",
		DayOpeningHoursMap: week(),
		Cuisine:            "ITALIAN",
		DefaultPrepTime:    15,
	}
	assert.NoError(t, v.Struct(req))

	delete(req.DayOpeningHoursMap, "SUNDAY")
	err := v.Struct(req)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "dayOpeningHoursMap", valErr.Fields[0].Field)
	assert.Equal(t, "must list opening hours for all seven days", valErr.Fields[0].Msg)
}
