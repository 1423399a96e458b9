package sofifa

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
	"github.com/riskibarqy/player-scout/internal/platform/resilience"
	"github.com/riskibarqy/player-scout/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultBaseURL      = "https://cdn.sofifa.net"
	defaultPhotoVersion = "25_120"
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 2 << 20
	userAgent           = "player-scout/1.0"
)

var errSofifaTransient = crerr.New("sofifa transient failure")

type ClientConfig struct {
	BaseURL        string
	PhotoVersion   string
	Timeout        time.Duration
	MaxBodyBytes   int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Dial overrides the transport dialer; nil uses TCP.
	Dial fasthttp.DialFunc
}

// Client fetches player photos from the sofifa CDN.
type Client struct {
	http         *fasthttp.Client
	baseURL      string
	photoVersion string
	timeout      time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight[usecase.Photo]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	photoVersion := strings.TrimSpace(cfg.PhotoVersion)
	if photoVersion == "" {
		photoVersion = defaultPhotoVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBody,
			Dial:                cfg.Dial,
		},
		baseURL:      baseURL,
		photoVersion: photoVersion,
		timeout:      timeout,
		logger:       logger.Named("sofifa"),
		breaker:      resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// PhotoURL returns the CDN address for a player id, e.g. 158023 ->
// <base>/players/158/023/<version>.png. Ids are zero-padded to six digits first.
func (c *Client) PhotoURL(playerID int64) string {
	padded := strconv.FormatInt(playerID, 10)
	if len(padded) < 6 {
		padded = strings.Repeat("0", 6-len(padded)) + padded
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString("/players/")
	_, _ = buf.WriteString(padded[:3])
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(padded[3:])
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(c.photoVersion)
	_, _ = buf.WriteString(".png")

	return buf.String()
}

// FetchPhoto downloads rawURL, or the derived CDN address when rawURL is empty.
// Concurrent requests for the same URL share one download.
func (c *Client) FetchPhoto(ctx context.Context, playerID int64, rawURL string) (usecase.Photo, error) {
	target := strings.TrimSpace(rawURL)
	if target == "" {
		target = c.PhotoURL(playerID)
	}
	if err := ctx.Err(); err != nil {
		return usecase.Photo{}, err
	}

	photo, err, shared := c.flight.Do(target, func() (usecase.Photo, error) {
		return resilience.Execute(c.breaker, func() (usecase.Photo, error) {
			return c.get(ctx, target)
		}, isCircuitFailure)
	})
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int64("sofifa.player_id", playerID),
			attribute.String("sofifa.url", target),
			attribute.Bool("sofifa.shared", shared),
			attribute.String("sofifa.circuit_state", string(c.breaker.State())),
		)
	}
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "sofifa circuit breaker rejected request", "state", c.breaker.State(), "player_id", playerID)
			return usecase.Photo{}, fmt.Errorf("%w: photo CDN is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if stderrors.Is(err, errSofifaTransient) {
			c.logger.WarnContext(ctx, "sofifa photo fetch failed", "player_id", playerID, "url", target, "error", err)
			return usecase.Photo{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return usecase.Photo{}, err
	}

	return photo, nil
}

func (c *Client) get(ctx context.Context, target string) (usecase.Photo, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "image/*")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return usecase.Photo{}, crerr.Wrapf(errSofifaTransient, "get %s: %v", target, err)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusOK:
	case status == fasthttp.StatusNotFound:
		return usecase.Photo{}, fmt.Errorf("%w: photo not on CDN", usecase.ErrNotFound)
	case isRetryableStatus(status):
		return usecase.Photo{}, crerr.Wrapf(errSofifaTransient, "get %s: status=%d", target, status)
	default:
		return usecase.Photo{}, fmt.Errorf("%w: CDN status=%d", usecase.ErrDependencyUnavailable, status)
	}

	body := append([]byte(nil), resp.Body()...)
	contentType := string(resp.Header.ContentType())
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	return usecase.Photo{
		Body:        body,
		ContentType: contentType,
		Source:      usecase.PhotoSourceRemote,
	}, nil
}

func isCircuitFailure(err error) bool {
	return stderrors.Is(err, errSofifaTransient)
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}
