package cli

import (
	"github.com/iudanet/adpanel/internal/client/iocli"
	"github.com/iudanet/adpanel/internal/client/submit"
)

// Console показывает уведомления в терминале и запоминает переходы
type Console struct {
	io     iocli.IO
	route  string
	errors int
}

var (
	_ submit.Notifier  = (*Console)(nil)
	_ submit.Navigator = (*Console)(nil)
)

// NewConsole создает консоль поверх IO
func NewConsole(io iocli.IO) *Console {
	return &Console{io: io}
}

func (c *Console) Success(msg string) {
	c.io.Println("✓ " + msg)
}

func (c *Console) Error(msg string) {
	c.errors++
	c.io.Println("✗ " + msg)
}

// Navigate печатает подсказку со следующей командой
func (c *Console) Navigate(route string) {
	c.route = route
	if hint := routeHint(route); hint != "" {
		c.io.Println(hint)
	}
}

// Route возвращает последний маршрут
func (c *Console) Route() string {
	return c.route
}

// Reported сообщает, что пользователю уже показана ошибка
func (c *Console) Reported() bool {
	return c.errors > 0
}

func (c *Console) reset() {
	c.route = ""
	c.errors = 0
}

func routeHint(route string) string {
	switch route {
	case submit.RouteLogin:
		return "Run 'adpanel login' to authenticate."
	case submit.RouteRegister:
		return "Run 'adpanel register' to create an account."
	case submit.RouteCompany, submit.RouteDashboard:
		return "Run 'adpanel ads list' to see your ads."
	case submit.RoutePlans:
		return "Run 'adpanel plans list' to choose another plan."
	default:
		return ""
	}
}
