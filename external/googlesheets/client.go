package googlesheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/singleflight"

	"github.com/lepakko/Six-Kings/internal/domain/sheet"
	"github.com/lepakko/Six-Kings/internal/platform/logging"
	"github.com/lepakko/Six-Kings/internal/platform/resilience"
	"github.com/lepakko/Six-Kings/internal/usecase"
)

const (
	defaultBaseURL  = "https://docs.google.com/spreadsheets/d"
	defaultTimeout  = 10 * time.Second
	defaultBackoff  = 500 * time.Millisecond
	maxResponseSize = 4 << 20
)

var errSheetTransient = crerr.New("sheet export transient failure")

// Tabs names the sheet gid of every league tab.
type Tabs struct {
	Players   string
	Liga      string
	Starter   string
	Team      string
	Matchdays []MatchdayTab
}

// MatchdayTab is the tab holding the games of one round.
type MatchdayTab struct {
	Round int
	GID   string
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	SheetID        string
	Tabs           Tabs
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Workers        int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads league tabs through the spreadsheet CSV export endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sheetID    string
	tabs       Tabs
	retry      resilience.RetryPolicy
	workers    int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

var _ sheet.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sheetID:    strings.TrimSpace(cfg.SheetID),
		tabs:       cfg.Tabs,
		retry:      resilience.RetryPolicy{MaxRetries: max(cfg.MaxRetries, 0), Backoff: backoff},
		workers:    max(cfg.Workers, 1),
		logger:     logger.Named("googlesheets"),
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) FetchTeams(ctx context.Context) ([]sheet.TeamRow, error) {
	return fetchRows[sheet.TeamRow](ctx, c, "liga", c.tabs.Liga)
}

func (c *Client) FetchRoster(ctx context.Context) ([]sheet.RosterRow, error) {
	return fetchRows[sheet.RosterRow](ctx, c, "players", c.tabs.Players)
}

func (c *Client) FetchStarters(ctx context.Context) ([]sheet.StarterRow, error) {
	return fetchRows[sheet.StarterRow](ctx, c, "starter", c.tabs.Starter)
}

func (c *Client) FetchTeamSheet(ctx context.Context) (sheet.Table, error) {
	export, err := c.fetchExport(ctx, c.tabs.Team)
	if err != nil {
		return sheet.Table{}, fmt.Errorf("fetch team sheet: %w", err)
	}
	return export.table(), nil
}

func fetchRows[T any](ctx context.Context, c *Client, tab, gid string) ([]T, error) {
	export, err := c.fetchExport(ctx, gid)
	if err != nil {
		return nil, fmt.Errorf("fetch %s sheet: %w", tab, err)
	}
	rows, err := sheet.DecodeRows[T](export.records)
	if err != nil {
		return nil, fmt.Errorf("decode %s sheet: %w", tab, err)
	}
	return rows, nil
}

func (c *Client) exportURL(gid string) string {
	query := url.Values{}
	query.Set("tqx", "out:csv")
	query.Set("gid", gid)
	return c.baseURL + "/" + url.PathEscape(c.sheetID) + "/gviz/tq?" + query.Encode()
}

// fetchExport downloads and parses one tab. Concurrent calls for the same
// tab share a single download.
func (c *Client) fetchExport(ctx context.Context, gid string) (export, error) {
	gid = strings.TrimSpace(gid)
	if c.sheetID == "" || gid == "" {
		return export{}, fmt.Errorf("%w: sheet id and gid are required", usecase.ErrInvalidInput)
	}

	out, err, _ := c.flight.Do(gid, func() (any, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sheet circuit breaker rejected request", "gid", gid, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: league sheet is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		parsed, reqErr := c.executeRequest(ctx, c.exportURL(gid))
		if isCircuitFailure(reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return parsed, reqErr
	})
	if err != nil {
		return export{}, err
	}

	parsed, ok := out.(export)
	if !ok {
		return export{}, fmt.Errorf("unexpected export payload type %T", out)
	}
	return parsed, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) (export, error) {
	var parsed export
	err := resilience.Retry(ctx, c.retry, isCircuitFailure, func(attempt int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/csv")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return crerr.Mark(crerr.Wrap(err, "send request"), errSheetTransient)
		}
		defer resp.Body.Close()

		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseSize)); err != nil {
			return crerr.Mark(crerr.Wrap(err, "read response body"), errSheetTransient)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			statusErr := crerr.Newf("sheet export status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
			if isRetryableStatus(resp.StatusCode) {
				return crerr.Mark(statusErr, errSheetTransient)
			}
			return statusErr
		}
		if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
			return crerr.New("sheet export returned html; is the sheet shared publicly?")
		}

		parsed, err = parseExport(buf.B)
		if err != nil {
			return crerr.Wrap(err, "parse sheet export")
		}
		if attempt > 0 {
			c.logger.InfoContext(ctx, "sheet export recovered", "attempt", attempt+1)
		}
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "sheet export failed", "url", fullURL, "error", err)
		return export{}, err
	}
	return parsed, nil
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errSheetTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
