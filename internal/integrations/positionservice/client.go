package positionservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент провайдера геопозиции устройства
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера позиции
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CurrentPosition получает текущую позицию устройства
func (c *Client) CurrentPosition(ctx context.Context) (*Position, error) {
	url := fmt.Sprintf("%s/position", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusForbidden, http.StatusNotFound:
		// Провайдер отказал в доступе к позиции
		return nil, ErrPositionUnavailable
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var position Position
	if err := json.NewDecoder(resp.Body).Decode(&position); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &position, nil
}

// CurrentPositionWithFallback получает позицию с graceful degradation:
// при любой недоступности провайдера возвращается фиксированная дефолтная
// координата, вызывающему никогда не возвращается ошибка и вызов никогда
// не блокируется дольше таймаута клиента.
func (c *Client) CurrentPositionWithFallback(ctx context.Context) domain.Coordinate {
	position, err := c.CurrentPosition(ctx)
	if err != nil {
		c.log.Warn("Position provider unavailable, falling back to default coordinate: %v", err)
		return domain.DefaultCoordinate
	}

	return domain.Coordinate{Latitude: position.Latitude, Longitude: position.Longitude}
}
