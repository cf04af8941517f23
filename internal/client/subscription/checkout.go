package subscription

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/validation"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// Checkout состояние формы оформления плана
type Checkout struct {
	// Initial данные формы в том виде, в котором они загружены с сервера.
	// Неизмененная форма отправляется как paymentInfo = null.
	Initial   pkgapi.PaymentInfo
	ProductID string
}

// Check возвращает текущий план и сохраненные платежные данные
func (s *Service) Check(ctx context.Context) (*pkgapi.SubscriptionCheckResponse, error) {
	resp, err := s.client.CheckSubscription(ctx)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			s.flow.Fail("check subscription", err)
		}
		return resp, err
	}
	return resp, nil
}

// PrepareCheckout загружает сохраненные платежные данные для формы.
// Если компания уже подписана на этот план, возвращает ErrAlreadyInPlan
// и переходит к списку планов.
func (s *Service) PrepareCheckout(ctx context.Context, productID string) (*Checkout, error) {
	co := &Checkout{ProductID: productID}

	resp, err := s.Check(ctx)
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		return nil, err
	case err != nil:
		// Нет активной подписки: сервер может прислать только paymentInfo
		slog.Debug("subscription check failed", "error", err)
	case resp != nil && resp.Product != nil && resp.Product.ID == productID:
		s.notifier.Error(MsgAlreadyInPlan)
		s.navigator.Navigate(submit.RoutePlans)
		return nil, ErrAlreadyInPlan
	}

	if resp != nil && resp.PaymentInfo != nil {
		co.Initial = *resp.PaymentInfo
		co.Initial.ExpiryDate = validation.ExpiryFromBackend(co.Initial.ExpiryDate)
	}
	return co, nil
}

// Submit оформляет подписку.
// Если форма не менялась, сервер использует сохраненные данные.
func (s *Service) Submit(ctx context.Context, co *Checkout, form pkgapi.PaymentInfo) error {
	req := pkgapi.SubscribeRequest{ProductID: co.ProductID}
	if form != co.Initial {
		info := form
		info.CardNumber = validation.UnformatCardNumber(form.CardNumber)
		req.PaymentInfo = &info
	}

	return s.flow.Run(ctx, submit.Submission{
		Name: "checkout",
		Form: paymentForm(form),
		Call: func(ctx context.Context) (string, error) {
			_, err := s.client.Subscribe(ctx, req)
			return "", err
		},
		SuccessMessage: MsgPurchased,
		SuccessRoute:   submit.RouteDashboard,
	})
}

func paymentForm(p pkgapi.PaymentInfo) validation.Form {
	return validation.Form{
		validation.FieldFirstName:  p.FirstName,
		validation.FieldLastName:   p.LastName,
		validation.FieldCardNumber: p.CardNumber,
		validation.FieldExpiryDate: p.ExpiryDate,
		validation.FieldAddress:    p.Address,
		validation.FieldCity:       p.City,
		validation.FieldState:      p.State,
		validation.FieldZipCode:    p.ZipCode,
		validation.FieldCountry:    p.Country,
	}
}
