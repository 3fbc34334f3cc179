package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Severity уровень уведомления
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification уведомление для внешнего приёмника
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client fire-and-forget клиент webhook-приёмника уведомлений
// Если URL не задан, уведомления только логируются
type Client struct {
	url        string
	httpClient *http.Client
	timeout    time.Duration
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		log:     log,
	}
}

// Notify отправляет уведомление синхронно
// Ответ приёмника сервисом не используется, важен только статус доставки
func (c *Client) Notify(ctx context.Context, n Notification) error {
	if c.url == "" {
		c.log.Info("Notify: [%s] %s - %s", n.Severity, n.Title, n.Description)
		return nil
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}

// NotifyAsync отправляет уведомление в фоне с собственным таймаутом.
// Жизненный цикл доставки не привязан к контексту запроса: отмена
// запроса клиентом не должна ронять уже принятое к отправке уведомление
func (c *Client) NotifyAsync(n Notification) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		if err := c.Notify(ctx, n); err != nil {
			c.log.Error("NotifyAsync: failed to deliver notification %q: %v", n.Title, err)
		}
	}()
}
