package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type RegisterOwnerRequest struct {
	FirstName            string `json:"firstName" validate:"required"`
	LastName             string `json:"lastName" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Username             string `json:"username" validate:"required,min=10"`
	PhoneNumber          string `json:"phoneNumber" validate:"required,numeric"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"-" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateRestaurantRequest struct {
	Name               string                  `json:"name" validate:"required"`
	Email              string                  `json:"email" validate:"required,email"`
	Address            Address                 `json:"address"`
	ResPictureURL      string                  `json:"resPictureUrl" validate:"required,url"`
	DayOpeningHoursMap map[string]OpeningHours `json:"dayOpeningHoursMap" validate:"vweek,dive"`
	Cuisine            string                  `json:"cuisine" validate:"required"`
	DefaultPrepTime    int                     `json:"defaultPrepTime" validate:"gte=10"`
}

type CreateOrderRequest struct {
	Dishes []string `json:"dishes"`
}

type PaymentInfo struct {
	Method       string  `json:"method"`
	Amount       float64 `json:"amount"`
	PaymentToken string  `json:"paymentToken"`
}

type CheckoutRequest struct {
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	DeliveryAddress Address     `json:"deliveryAddress"`
	Email           string      `json:"email"`
	PhoneNumber     string      `json:"phoneNumber"`
	PaymentInfo     PaymentInfo `json:"paymentInfo"`
}

// CheckoutForm is what the customer fills in; card fields never leave the client.
type CheckoutForm struct {
	FirstName       string       `json:"firstName" validate:"required"`
	LastName        string       `json:"lastName" validate:"required"`
	DeliveryAddress Address      `json:"deliveryAddress"`
	Email           string       `json:"email" validate:"required,email"`
	PhoneNumber     string       `json:"phoneNumber" validate:"required,vphone"`
	Payment         PaymentInput `json:"paymentInfo"`
}

const PaymentCash = "CASH"

type PaymentInput struct {
	Method     string `json:"method" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"omitempty,vcard"`
	ExpiryDate string `json:"expiryDate" validate:"omitempty,vexpiry"`
	CVV        string `json:"cvv" validate:"omitempty,vcvv"`
}

type PublishRequest struct {
	IsPublished bool `json:"isPublished"`
}

type StockRequest struct {
	IsInStock bool `json:"isInStock"`
}

type ScheduleRequest struct {
	ScheduleTime string `json:"scheduleTime"`
}

type OrderActionRequest struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason,omitempty"`
}

type OpenStatusRequest struct {
	Status OpenStatus `json:"status"`
}

type JwtDTO struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
}

type ResponseDTO struct {
	StatusCode string `json:"statusCode,omitempty"`
	StatusMsg  string `json:"statusMsg,omitempty"`
}

type ErrorResponseDTO struct {
	APIPath      string `json:"apiPath"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	ErrorTime    string `json:"errorTime"`
}

type OrderIDDTO struct {
	OrderID string `json:"orderId"`
}

// OpenStatusDTO carries either the owner-selected mode or an already
// computed open flag, depending on what the server sends.
type OpenStatusDTO struct {
	Mode OpenStatus `json:"mode,omitempty"`
	Open *bool      `json:"open,omitempty"`
}

func (d *OpenStatusDTO) UnmarshalJSON(data []byte) error {
	var raw struct {
		OpenStatus json.RawMessage `json:"openStatus"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.OpenStatus) == 0 || string(raw.OpenStatus) == "null" {
		return nil
	}

	var flag bool
	if err := json.Unmarshal(raw.OpenStatus, &flag); err == nil {
		d.Open = &flag
		return nil
	}

	var mode string
	if err := json.Unmarshal(raw.OpenStatus, &mode); err != nil {
		return fmt.Errorf("openStatus: %w", err)
	}
	d.Mode = OpenStatus(strings.ToUpper(mode))
	return nil
}
