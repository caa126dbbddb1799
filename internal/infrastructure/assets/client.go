package assets

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/lamberpool/matchday/internal/platform/logging"
	"github.com/lamberpool/matchday/internal/platform/resilience"
)

var errAssetStoreTransient = crerr.New("asset store transient failure")

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Client talks to the external image store that holds match photos and
// jersey shots. It implements the Remove operation the photo and match
// services use for best-effort cleanup after a database delete.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	apiKey         string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Remove deletes one stored object. A 404 from the store counts as success:
// the object being gone is the outcome the caller wants.
func (c *Client) Remove(ctx context.Context, assetID string) error {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return crerr.New("asset id is required")
	}
	if c.baseURL == "" {
		return crerr.New("asset store base url is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "asset store circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("asset store is temporarily unavailable: %w", err)
		}
	}

	err := c.doDelete(c.deleteURL(assetID))
	c.recordCircuitResult(err)
	if err != nil {
		return fmt.Errorf("remove asset %s: %w", assetID, err)
	}
	return nil
}

func (c *Client) deleteURL(assetID string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString("/assets/")
	_, _ = buf.WriteString(assetID)
	return buf.String()
}

func (c *Client) doDelete(url string) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodDelete)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return fmt.Errorf("%w: send delete request: %v", errAssetStoreTransient, err)
	}

	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return nil
	case isRetryableStatus(status):
		return fmt.Errorf("%w: asset store status=%d", errAssetStoreTransient, status)
	default:
		return fmt.Errorf("asset store status=%d", status)
	}
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err != nil && isTransient(err) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func isTransient(err error) bool {
	return stderrors.Is(err, errAssetStoreTransient)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
