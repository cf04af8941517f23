package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PlanStatus состояние плана, которым владеет компания
type PlanStatus int

const (
	PlanStatusNone        PlanStatus = iota // план не принадлежит компании или данных нет
	PlanStatusPending                       // последний платеж в обработке
	PlanStatusNextPayment                   // активен, известна дата следующего платежа
	PlanStatusEnding                        // отменен, действует до EndDate
)

// Plan представляет тарифный план подписки
type Plan struct {
	IsPending       *bool      `json:"isPending"`
	NextPaymentDate *string    `json:"nextPaymentDate"`
	EndDate         *string    `json:"endDate"`
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Price           FlexString `json:"price"`
	Description     string     `json:"description"`
	Color           string     `json:"color"`
	IsPopular       FlexBool   `json:"ispopular"`
	IsYourPlan      bool       `json:"isYourPlan"`
}

// GetID возвращает идентификатор плана
func (p Plan) GetID() string { return p.ID }

// Status возвращает единственное значимое состояние плана.
// Порядок: pending, затем дата следующего платежа, затем дата окончания.
func (p Plan) Status() PlanStatus {
	if !p.IsYourPlan {
		return PlanStatusNone
	}
	switch {
	case p.IsPending != nil && *p.IsPending:
		return PlanStatusPending
	case p.NextPaymentDate != nil && *p.NextPaymentDate != "":
		return PlanStatusNextPayment
	case p.EndDate != nil && *p.EndDate != "":
		return PlanStatusEnding
	default:
		return PlanStatusNone
	}
}

// FlexString строка, которую сервер может прислать как строкой, так и числом
type FlexString string

// UnmarshalJSON принимает строку, число или null
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

// FlexBool признак, который сервер может прислать как bool или строкой "true"/"false"
type FlexBool bool

// UnmarshalJSON принимает bool, строку или null
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected bool or string, got %s", data)
	}
	*f = FlexBool(strings.EqualFold(strings.TrimSpace(s), "true"))
	return nil
}

// PlansResponse представляет ответ на GET /subscription
type PlansResponse struct {
	Plans []Plan `json:"plans"`
}

// ProductUpdateRequest представляет запрос администратора POST /product/:id
type ProductUpdateRequest struct {
	Title       string `json:"title"       validate:"required"`
	Price       string `json:"price"       validate:"required,numeric"`
	Description string `json:"description" validate:"required"`
}

// PaymentInfo платежные и биллинговые данные компании.
// CardNumber, начинающийся с "XXXX", означает уже сохраненную карту.
type PaymentInfo struct {
	FirstName  string `json:"firstName"  validate:"required"`
	LastName   string `json:"lastName"   validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	Address    string `json:"address"    validate:"required"`
	City       string `json:"city"       validate:"required"`
	State      string `json:"state"      validate:"required"`
	ZipCode    string `json:"zipCode"    validate:"required"`
	Country    string `json:"country"    validate:"required"`
}

// Product краткие данные текущего плана компании
type Product struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// SubscriptionCheckResponse представляет ответ на GET /subscription/check.
// При ошибке сервер может вернуть только PaymentInfo.
type SubscriptionCheckResponse struct {
	PaymentInfo *PaymentInfo `json:"paymentInfo"`
	Product     *Product     `json:"product"`
}

// SubscribeRequest представляет запрос POST /subscription.
// PaymentInfo == nil означает "использовать сохраненные данные".
type SubscribeRequest struct {
	PaymentInfo *PaymentInfo `json:"paymentInfo"`
	ProductID   string       `json:"productId"`
}
