package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"overcooked-client/storefront/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern  = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
	cardPattern   = regexp.MustCompile(`^(\d{4}[-\s]?){3}\d{4}$`)
	expiryPattern = regexp.MustCompile(`^((0[1-9])|(1[0-2]))\/?([0-9]{2})$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
	hhmmPattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Validator checks forms locally; its errors never reach the network.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// prefix v = validate format
	mustRegister(v, "vphone", matches(phonePattern))
	mustRegister(v, "vcard", matches(cardPattern))
	mustRegister(v, "vexpiry", matches(expiryPattern))
	mustRegister(v, "vcvv", matches(cvvPattern))
	mustRegister(v, "vhhmm", matches(hhmmPattern))
	mustRegister(v, "vweek", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.Map {
			return false
		}
		for _, day := range domain.Weekdays {
			if !field.MapIndex(reflect.ValueOf(day)).IsValid() {
				return false
			}
		}
		return true
	})

	v.RegisterStructValidation(validatePayment, domain.PaymentInput{})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("unable to register %s: %v", tag, err))
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Card details are required for every method except cash.
func validatePayment(sl validator.StructLevel) {
	p := sl.Current().Interface().(domain.PaymentInput)
	if strings.EqualFold(p.Method, domain.PaymentCash) {
		return
	}
	if p.CardNumber == "" {
		sl.ReportError(p.CardNumber, "cardNumber", "CardNumber", "vcardrequired", "")
	}
	if p.ExpiryDate == "" {
		sl.ReportError(p.ExpiryDate, "expiryDate", "ExpiryDate", "vcardrequired", "")
	}
	if p.CVV == "" {
		sl.ReportError(p.CVV, "cvv", "CVV", "vcardrequired", "")
	}
}

// Struct validates in and translates failures into a *domain.ValidationError.
func (v *Validator) Struct(in any) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	out := &domain.ValidationError{}
	for _, valErr := range valErrs {
		out.Fields = append(out.Fields, domain.FieldError{Field: fieldPath(valErr), Msg: message(valErr)})
	}
	return out
}

// fieldPath drops the top-level struct name: "deliveryAddress.city", not "CheckoutForm.deliveryAddress.city".
func fieldPath(f validator.FieldError) string {
	ns := f.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return f.Field()
}

func message(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "numeric":
		return "must contain digits only"
	case "min":
		if f.Kind() == reflect.Slice || f.Kind() == reflect.Map {
			return fmt.Sprintf("must have at least %s entries", f.Param())
		}
		return fmt.Sprintf("must be at least %s characters", f.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", f.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", f.Param())
	case "eqfield":
		return "must match password"
	case "vphone":
		return "must be a valid phone number"
	case "vcard":
		return "must be a 16 digit card number"
	case "vexpiry":
		return "must be a valid expiry date (MM/YY)"
	case "vcvv":
		return "must be 3 or 4 digits"
	case "vcardrequired":
		return "is required for card payments"
	case "vhhmm":
		return "must be a time in HH:MM format"
	case "vweek":
		return "must list opening hours for all seven days"
	default:
		return fmt.Sprintf("invalid value tag %s", f.Tag())
	}
}
