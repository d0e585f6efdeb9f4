// Package geocode resolves road addresses through the vworld address API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"locinsight/config"
	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/domain/service"
	"locinsight/internal/errors"
	"locinsight/internal/infra/metrics"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.vworld.kr/req/address"
	maxBodyBytes   = 1 << 20
)

// vworldClient is a concrete implementation of the Geocoder interface.
type vworldClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewVWorldGeocoder is the constructor for vworldClient.
func NewVWorldGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	return newVWorldClient(cfg.Geocode, &http.Client{Timeout: cfg.Geocode.Timeout}, logger)
}

func newVWorldClient(cfg *config.GeocodeConfig, client *http.Client, logger *slog.Logger) *vworldClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &vworldClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// coordinate accepts x and y as JSON strings or numbers.
type coordinate struct {
	X *decimal.Decimal `json:"x"`
	Y *decimal.Decimal `json:"y"`
}

type addressResponse struct {
	Response struct {
		Status string `json:"status"`
		Result struct {
			Point coordinate `json:"point"`
		} `json:"result"`
	} `json:"response"`
}

// Geocode does not retry; the caller decides whether a failed lookup is terminal.
func (c *vworldClient) Geocode(ctx context.Context, roadAddress string) (orb.Point, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordGeocode(metrics.GeocodeRateLimited)

		return orb.Point{}, errors.Wrap(domainerrors.ErrGeocodeLookupFailed, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(roadAddress), nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "build geocode request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordGeocode(metrics.GeocodeTransport)
		c.logger.WarnContext(ctx, "Geocode request failed", slog.Any("error", err))

		return orb.Point{}, errors.Wrap(domainerrors.ErrGeocodeLookupFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordGeocode(metrics.GeocodeHTTPError)
		c.logger.WarnContext(ctx, "Geocode request rejected", slog.Int("status", resp.StatusCode))

		return orb.Point{}, domainerrors.ErrGeocodeLookupFailed.WithDetails(fmt.Sprintf("status %d", resp.StatusCode))
	}

	point, err := decodePoint(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.RecordGeocode(metrics.GeocodeUnparsable)
		c.logger.WarnContext(ctx, "Geocode payload unparsable", slog.Any("error", err))

		return orb.Point{}, err
	}

	metrics.RecordGeocode(metrics.GeocodeOK)

	return point, nil
}

func (c *vworldClient) requestURL(roadAddress string) string {
	query := url.Values{}
	query.Set("service", "address")
	query.Set("request", "getcoord")
	query.Set("crs", "epsg:4326")
	query.Set("address", roadAddress)
	query.Set("format", "json")
	query.Set("type", "road")
	query.Set("key", c.apiKey)

	return c.baseURL + "?" + query.Encode()
}

func decodePoint(body io.Reader) (orb.Point, error) {
	var payload addressResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return orb.Point{}, domainerrors.ErrCoordinatesUnparsable.WithDetails(err.Error())
	}

	point := payload.Response.Result.Point
	if point.X == nil || point.Y == nil {
		return orb.Point{}, domainerrors.ErrCoordinatesUnparsable.WithDetails("missing point in status " + payload.Response.Status)
	}

	return orb.Point{point.X.InexactFloat64(), point.Y.InexactFloat64()}, nil
}
