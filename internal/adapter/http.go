package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-counters/internal/config"
	"github.com/MKhiriev/go-counters/internal/logger"
	"github.com/MKhiriev/go-counters/internal/utils"
	"github.com/MKhiriev/go-counters/models"
	"github.com/go-resty/resty/v2"
)

const (
	counterPath = "/counters/{name}"
	versionPath = "/api/version/"
)

type httpCounterAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCounterAdapter constructs an HTTP/REST implementation of
// [CounterAdapter]. The base URL is taken from adapterCfg.HTTPAddress; a bare
// "host:port" is treated as plain HTTP.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCounterAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CounterAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCounterAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCounterAdapter) CreateCounter(ctx context.Context, name string) (models.Counter, error) {
	resp, err := h.counterRequest(ctx, name).Post(counterPath)
	if err != nil {
		return models.Counter{}, fmt.Errorf("create counter request: %w", err)
	}

	return h.decodeCounter(resp, "*httpCounterAdapter.CreateCounter")
}

func (h *httpCounterAdapter) GetCounter(ctx context.Context, name string) (models.Counter, error) {
	resp, err := h.counterRequest(ctx, name).Get(counterPath)
	if err != nil {
		return models.Counter{}, fmt.Errorf("get counter request: %w", err)
	}

	return h.decodeCounter(resp, "*httpCounterAdapter.GetCounter")
}

func (h *httpCounterAdapter) IncrementCounter(ctx context.Context, name string) (models.Counter, error) {
	resp, err := h.counterRequest(ctx, name).Put(counterPath)
	if err != nil {
		return models.Counter{}, fmt.Errorf("increment counter request: %w", err)
	}

	return h.decodeCounter(resp, "*httpCounterAdapter.IncrementCounter")
}

func (h *httpCounterAdapter) DeleteCounter(ctx context.Context, name string) error {
	resp, err := h.counterRequest(ctx, name).Delete(counterPath)
	if err != nil {
		return fmt.Errorf("delete counter request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCounterAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// counterRequest prepares a request for /counters/{name}. resty escapes the
// path parameter, so names with spaces or slashes stay in one segment.
func (h *httpCounterAdapter) counterRequest(ctx context.Context, name string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParam("name", name)
}

// decodeCounter maps error statuses and parses a {"<name>": <value>} body.
func (h *httpCounterAdapter) decodeCounter(resp *resty.Response, fn string) (models.Counter, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Counter{}, err
	}

	var counter models.Counter
	if err := counter.UnmarshalJSON(resp.Body()); err != nil {
		h.logger.Err(err).Str("func", fn).Str("body", resp.String()).Msg("malformed counter response")
		return models.Counter{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return counter, nil
}
