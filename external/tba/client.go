package tba

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
	"github.com/riskibarqy/scout-schedule/internal/platform/resilience"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL   = "https://www.thebluealliance.com/api/v3"
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "scout-schedule/1.0"
	authHeader       = "X-TBA-Auth-Key"
	maxBodyBytes     = 6 << 20
)

var wireValidator = validator.New(validator.WithRequiredStructEnabled())

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	UserAgent      string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to The Blue Alliance read API v3. Each call is a single
// attempt; identical concurrent requests share one round trip.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight
}

var (
	_ usecase.ScheduleProvider = (*Client)(nil)
	_ usecase.TeamProvider     = (*Client)(nil)
)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	if breaker != nil {
		breaker.OnStateChange(func(from, to resilience.CircuitState) {
			logger.Warn("tba circuit breaker state changed", "from", from, "to", to)
		})
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
		breaker:    breaker,
	}
}

// FetchMatches returns every match of an event in wire order.
func (c *Client) FetchMatches(ctx context.Context, eventID, apiKey string) ([]schedule.RawMatch, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", usecase.ErrInvalidInput)
	}

	const op = "fetch matches"
	var items []matchModel
	if err := c.doJSON(ctx, op, "/event/"+url.PathEscape(eventID)+"/matches", apiKey, &items); err != nil {
		return nil, err
	}

	out := make([]schedule.RawMatch, 0, len(items))
	for i, item := range items {
		if err := wireValidator.Struct(item); err != nil {
			return nil, &usecase.RemoteError{
				Op:      op,
				Status:  http.StatusOK,
				Message: fmt.Sprintf("malformed match at index %d: %v", i, err),
			}
		}
		out = append(out, item.toRaw())
	}
	return out, nil
}

func (c *Client) FetchEvent(ctx context.Context, eventID, apiKey string) (usecase.ExternalEvent, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return usecase.ExternalEvent{}, fmt.Errorf("%w: event id is required", usecase.ErrInvalidInput)
	}

	const op = "fetch event"
	var item eventModel
	if err := c.doJSON(ctx, op, "/event/"+url.PathEscape(eventID)+"/simple", apiKey, &item); err != nil {
		return usecase.ExternalEvent{}, err
	}
	if err := wireValidator.Struct(item); err != nil {
		return usecase.ExternalEvent{}, &usecase.RemoteError{Op: op, Status: http.StatusOK, Message: "malformed event: " + err.Error()}
	}

	return usecase.ExternalEvent{
		Key:  item.Key,
		Name: strings.TrimSpace(item.Name),
		Year: item.Year,
	}, nil
}

func (c *Client) FetchTeam(ctx context.Context, teamNumber int, apiKey string) (usecase.ExternalTeam, error) {
	if teamNumber <= 0 {
		return usecase.ExternalTeam{}, fmt.Errorf("%w: team number must be greater than zero", usecase.ErrInvalidInput)
	}

	var item teamModel
	if err := c.doJSON(ctx, "fetch team", "/team/"+teamKey(teamNumber), apiKey, &item); err != nil {
		return usecase.ExternalTeam{}, err
	}

	number := item.TeamNumber
	if number <= 0 {
		number = teamNumber
	}
	return usecase.ExternalTeam{
		Number:   number,
		Nickname: strings.TrimSpace(item.Nickname),
	}, nil
}

func (c *Client) FetchTeamMedia(ctx context.Context, teamNumber, year int, apiKey string) ([]usecase.ExternalMedia, error) {
	if teamNumber <= 0 {
		return nil, fmt.Errorf("%w: team number must be greater than zero", usecase.ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be greater than zero", usecase.ErrInvalidInput)
	}

	var items []mediaModel
	path := "/team/" + teamKey(teamNumber) + "/media/" + strconv.Itoa(year)
	if err := c.doJSON(ctx, "fetch team media", path, apiKey, &items); err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalMedia, 0, len(items))
	for _, item := range items {
		out = append(out, item.toExternal())
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, op, path, apiKey string, target any) error {
	fullURL := c.baseURL + path
	key := path + "#" + keyFingerprint(apiKey)
	// Only the flight leader asks the breaker, so each admitted half-open call is
	// recorded exactly once; followers share its outcome or its rejection.
	out, err, _ := c.flight.Do(key, func() (any, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "tba circuit breaker rejected request", "op", op, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %s: alliance data service is temporarily unavailable", usecase.ErrDependencyUnavailable, op)
		}

		raw, reqErr := c.executeRequest(ctx, op, fullURL, apiKey)
		if reqErr != nil && isCircuitFailure(reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return &usecase.RemoteError{Op: op, Status: http.StatusOK, Message: "malformed response: " + abbreviateBody([]byte(err.Error()))}
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, op, fullURL, apiKey string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.userAgent)
	req.Header.Set(authHeader, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		netErr := &usecase.NetworkError{Op: op, Err: sanitizeTransportError(err, apiKey)}
		c.logger.WarnContext(ctx, "tba request failed", "url", fullURL, "error", netErr)
		return nil, netErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		netErr := &usecase.NetworkError{Op: op, Err: fmt.Errorf("read response body: %w", err)}
		c.logger.WarnContext(ctx, "tba request failed", "url", fullURL, "error", netErr)
		return nil, netErr
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	remoteErr := &usecase.RemoteError{
		Op:      op,
		Status:  resp.StatusCode,
		Message: sanitizeSensitiveText(abbreviateBody(raw), apiKey),
	}
	c.logger.WarnContext(ctx, "tba request failed", "url", fullURL, "status", resp.StatusCode, "error", remoteErr)
	return nil, remoteErr
}

// isCircuitFailure counts outages, not caller mistakes: a rejected key or an
// unknown event says nothing about the service's health.
func isCircuitFailure(err error) bool {
	if stderrors.Is(err, context.Canceled) {
		return false
	}
	var remote *usecase.RemoteError
	if stderrors.As(err, &remote) {
		return isRetryableStatus(remote.Status)
	}
	var network *usecase.NetworkError
	return stderrors.As(err, &network)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// sanitizeTransportError keeps the error chain (context cancellation stays
// detectable) while dropping the key from any message that echoes it.
func sanitizeTransportError(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return &redactedError{msg: sanitizeSensitiveText(err.Error(), apiKey), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" || apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, apiKey, "REDACTED")
}

func keyFingerprint(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:8])
}

func teamKey(teamNumber int) string {
	return "frc" + strconv.Itoa(teamNumber)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
