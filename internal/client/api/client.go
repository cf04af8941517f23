package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/adpanel/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает REST API бэкенда рекламного кабинета
type ClientAPI interface {
	IsAuth(ctx context.Context) (*api.IsAuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.MessageResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.MessageResponse, error)
	Logout(ctx context.Context) error

	ListAds(ctx context.Context) ([]api.Ad, error)
	GetAd(ctx context.Context, id string) (*api.Ad, error)
	SubmitAd(ctx context.Context, req api.AdSubmitRequest) (*api.MessageResponse, error)
	DeleteAd(ctx context.Context, id string) (*api.MessageResponse, error)
	ResetAds(ctx context.Context) (*api.MessageResponse, error)

	ListCompanies(ctx context.Context) ([]api.Company, error)
	RemoveCompany(ctx context.Context, id string) (*api.MessageResponse, error)
	BlockCompany(ctx context.Context, id string) (*api.MessageResponse, error)
	UnblockCompany(ctx context.Context, id string) (*api.MessageResponse, error)
	CompanyAds(ctx context.Context, id string) ([]api.Ad, error)

	ListPlans(ctx context.Context) ([]api.Plan, error)
	Subscribe(ctx context.Context, req api.SubscribeRequest) (*api.MessageResponse, error)
	CancelSubscription(ctx context.Context) (*api.MessageResponse, error)
	CheckSubscription(ctx context.Context) (*api.SubscriptionCheckResponse, error)
	UpdateProduct(ctx context.Context, id string, req api.ProductUpdateRequest) (*api.MessageResponse, error)

	Cookies() []*http.Cookie
	SetCookies(cookies []*http.Cookie)
	ResetSession()
}

// Client представляет HTTP клиент для взаимодействия с сервером.
// Сессионная cookie хранится в cookie jar и отправляется с каждым запросом.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	base       *url.URL
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут HTTP запросов
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger задает логгер клиента
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	base, err := url.Parse(baseURL)
	if err != nil {
		// некорректный адрес проявится ошибкой при первом запросе
		base = &url.URL{}
	}

	c := &Client{
		baseURL: baseURL,
		base:    base,
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     newJar(),
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Transport = newLoggingTransport(c.httpClient.Transport, c.logger)
	return c
}

func newJar() http.CookieJar {
	// cookiejar.New с nil options не возвращает ошибку
	jar, _ := cookiejar.New(nil)
	return jar
}

// Cookies возвращает cookie текущей сессии
func (c *Client) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.base)
}

// SetCookies восстанавливает cookie сохраненной сессии
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.httpClient.Jar.SetCookies(c.base, cookies)
}

// ResetSession удаляет все cookie
func (c *Client) ResetSession() {
	c.httpClient.Jar = newJar()
}

// IsAuth проверяет текущую сессию
func (c *Client) IsAuth(ctx context.Context) (*api.IsAuthResponse, error) {
	var resp api.IsAuthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/auth/isAuth", nil, &resp); err != nil {
		return nil, fmt.Errorf("isAuth request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию компании
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует новую компанию
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Logout завершает сессию на сервере
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ListAds возвращает баннеры текущей компании
func (c *Client) ListAds(ctx context.Context) ([]api.Ad, error) {
	var resp api.AdsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/ads", nil, &resp); err != nil {
		return nil, fmt.Errorf("list ads request failed: %w", err)
	}
	return resp.Ads, nil
}

// GetAd возвращает баннер по ID
func (c *Client) GetAd(ctx context.Context, id string) (*api.Ad, error) {
	var resp api.Ad
	if err := c.doRequest(ctx, http.MethodGet, "/ads/get/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get ad request failed: %w", err)
	}
	return &resp, nil
}

// SubmitAd создает или обновляет баннер
func (c *Client) SubmitAd(ctx context.Context, req api.AdSubmitRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/ads/submit", req, &resp); err != nil {
		return nil, fmt.Errorf("submit ad request failed: %w", err)
	}
	return &resp, nil
}

// DeleteAd удаляет баннер
func (c *Client) DeleteAd(ctx context.Context, id string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/ads/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("delete ad request failed: %w", err)
	}
	return &resp, nil
}

// ResetAds сбрасывает счетчики показов
func (c *Client) ResetAds(ctx context.Context) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodGet, "/ads/reset", nil, &resp); err != nil {
		return nil, fmt.Errorf("reset ads request failed: %w", err)
	}
	return &resp, nil
}

// ListCompanies возвращает список компаний (только для администратора)
func (c *Client) ListCompanies(ctx context.Context) ([]api.Company, error) {
	var resp api.CompanyListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/company", nil, &resp); err != nil {
		return nil, fmt.Errorf("list companies request failed: %w", err)
	}
	return resp.CompanyList, nil
}

// RemoveCompany удаляет компанию
func (c *Client) RemoveCompany(ctx context.Context, id string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	path := fmt.Sprintf("/company/%s/remove", url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("remove company request failed: %w", err)
	}
	return &resp, nil
}

// BlockCompany блокирует компанию
func (c *Client) BlockCompany(ctx context.Context, id string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	path := fmt.Sprintf("/company/%s/block", url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("block company request failed: %w", err)
	}
	return &resp, nil
}

// UnblockCompany снимает блокировку компании
func (c *Client) UnblockCompany(ctx context.Context, id string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	path := fmt.Sprintf("/company/%s/unblock", url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("unblock company request failed: %w", err)
	}
	return &resp, nil
}

// CompanyAds возвращает баннеры указанной компании
func (c *Client) CompanyAds(ctx context.Context, id string) ([]api.Ad, error) {
	var resp api.AdsResponse
	path := fmt.Sprintf("/company/%s/ads", url.PathEscape(id))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("company ads request failed: %w", err)
	}
	return resp.Ads, nil
}

// ListPlans возвращает тарифные планы
func (c *Client) ListPlans(ctx context.Context) ([]api.Plan, error) {
	var resp api.PlansResponse
	if err := c.doRequest(ctx, http.MethodGet, "/subscription", nil, &resp); err != nil {
		return nil, fmt.Errorf("list plans request failed: %w", err)
	}
	return resp.Plans, nil
}

// Subscribe оформляет подписку на план
func (c *Client) Subscribe(ctx context.Context, req api.SubscribeRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/subscription", req, &resp); err != nil {
		return nil, fmt.Errorf("subscribe request failed: %w", err)
	}
	return &resp, nil
}

// CancelSubscription отменяет текущую подписку
func (c *Client) CancelSubscription(ctx context.Context) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/subscription", nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel subscription request failed: %w", err)
	}
	return &resp, nil
}

// CheckSubscription возвращает текущий план и платежные данные.
// При ответе с ошибкой сервер может прислать только paymentInfo,
// поэтому вместе с ошибкой возвращается разобранное тело, если оно есть.
func (c *Client) CheckSubscription(ctx context.Context) (*api.SubscriptionCheckResponse, error) {
	var resp api.SubscriptionCheckResponse
	err := c.doRequest(ctx, http.MethodGet, "/subscription/check", nil, &resp)
	if err == nil {
		return &resp, nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && len(apiErr.Body) > 0 {
		var partial api.SubscriptionCheckResponse
		if jsonErr := json.Unmarshal(apiErr.Body, &partial); jsonErr == nil && partial.PaymentInfo != nil {
			return &partial, fmt.Errorf("check subscription request failed: %w", err)
		}
	}
	return nil, fmt.Errorf("check subscription request failed: %w", err)
}

// UpdateProduct изменяет название, цену и описание плана (только для администратора)
func (c *Client) UpdateProduct(ctx context.Context, id string, req api.ProductUpdateRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/product/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	target := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Body: respBody}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	// Декодируем успешный ответ, пустое тело допустимо
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
