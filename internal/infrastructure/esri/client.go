package esri

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geo-gateway/internal/config"
	"github.com/geo-gateway/internal/pkg/metrics"
	"go.uber.org/zap"
)

const tokenParam = "token"

// Request - один исходящий вызов. Params уходят в query для GET и в form-body для POST.
type Request struct {
	Operation string
	Method    string
	URL       string
	Params    url.Values
	Header    http.Header
}

// Response - сырой ответ сервиса; тело прочитано целиком, разбор на стороне вызывающего
type Response struct {
	StatusCode int
	Body       []byte
}

// Client выполняет вызовы к ArcGIS и подставляет токен в каждый запрос.
// Повторов нет, каждый вызов ровно один.
type Client struct {
	httpClient *http.Client
	token      string
	logger     *zap.Logger
}

// NewClient создает клиент ArcGIS с таймаутом из конфигурации
func NewClient(cfg *config.EsriConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		token:  cfg.APIKey,
		logger: logger,
	}
}

// Do выполняет запрос. Ошибка возвращается только если ответ не получен или не прочитан;
// статус и содержимое тела не интерпретируются.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	params := url.Values{}
	for k, vs := range r.Params {
		params[k] = append([]string(nil), vs...)
	}
	params.Set(tokenParam, c.token)

	var (
		req *http.Request
		err error
	)
	switch r.Method {
	case http.MethodGet:
		target := r.URL
		if strings.Contains(target, "?") {
			target += "&" + params.Encode()
		} else {
			target += "?" + params.Encode()
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	case http.MethodPost:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, r.URL, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, fmt.Errorf("unsupported method %q", r.Method)
	}
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("operation", r.Operation), zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	c.logger.Debug("Calling ArcGIS",
		zap.String("operation", r.Operation),
		zap.String("method", r.Method),
		zap.String("url", r.URL))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = stripQuery(err, r.URL)
		metrics.ObserveUpstream(r.Operation, metrics.OutcomeError, time.Since(start))
		c.logger.Error("Failed to execute request",
			zap.String("operation", r.Operation),
			zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveUpstream(r.Operation, metrics.OutcomeError, time.Since(start))
		c.logger.Error("Failed to read response body", zap.String("operation", r.Operation), zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	metrics.ObserveUpstream(r.Operation, metrics.OutcomeSuccess, time.Since(start))

	c.logger.Debug("ArcGIS call finished",
		zap.String("operation", r.Operation),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_bytes", len(body)))

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// stripQuery заменяет URL в *url.Error на адрес без query, чтобы токен не попал в лог
func stripQuery(err error, endpoint string) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: endpoint, Err: urlErr.Err}
}
