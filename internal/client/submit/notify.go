package submit

import "fmt"

//go:generate moq -out notify_mock.go . Notifier Navigator

// Notifier показывает пользователю результат операции
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator переключает текущий экран
type Navigator interface {
	Navigate(route string)
}

// Маршруты экранов
const (
	RouteLogin     = "/authentication/login"
	RouteRegister  = "/authentication/register"
	RouteCompany   = "/company"
	RouteDashboard = "/dashboard"
	RoutePlans     = "/plans"
)

// RouteCheckout экран оформления плана
func RouteCheckout(productID string) string {
	return fmt.Sprintf("/checkout:%s", productID)
}

// RouteAd экран редактирования баннера
func RouteAd(adID string) string {
	return fmt.Sprintf("/ad:%s", adID)
}
