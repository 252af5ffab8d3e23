package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-team-manager/internal/domain/match"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
	"github.com/riskibarqy/football-team-manager/internal/platform/resilience"
	"github.com/riskibarqy/football-team-manager/internal/usecase"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"
	authHeader     = "X-Auth-Token"
	queryDateFmt   = "2006-01-02"
	maxBodyBytes   = 4 << 20
)

var errTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads team matches from the football-data.org v4 API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

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
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.OnStateChange == nil {
		breakerCfg.OnStateChange = func(from, to resilience.CircuitState) {
			logger.Warn("football-data circuit breaker state changed", "from", string(from), "to", string(to))
		}
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) ListTeamMatches(ctx context.Context, query match.Query) ([]match.Match, error) {
	if query.TeamID <= 0 {
		return nil, crerr.New("team id must be greater than zero")
	}

	path := fmt.Sprintf("/teams/%d/matches", query.TeamID)
	params := map[string]string{
		"dateFrom": query.DateFrom.UTC().Format(queryDateFmt),
		"dateTo":   query.DateTo.UTC().Format(queryDateFmt),
	}
	if status := strings.TrimSpace(query.Status); status != "" {
		params["status"] = status
	}

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, path, params, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "fetch matches team_id=%d status=%s", query.TeamID, query.Status)
	}

	out := make([]match.Match, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		mapped, err := toDomainMatch(item)
		if err != nil {
			c.logger.WarnContext(ctx, "skip football-data match with invalid payload", "match_id", item.ID, "error", err)
			continue
		}
		out = append(out, mapped)
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	fetch := func() error {
		var err error
		raw, err = c.executeRequest(ctx, fullURL)
		return err
	}

	var err error
	if c.circuitEnabled {
		err = c.breaker.Execute(fetch, isTransient)
	} else {
		err = fetch()
	}
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "state", string(c.breaker.State()))
		return fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode provider payload")
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(authHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, crerr.Mark(crerr.Newf("send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey)), errTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		if isTransientStatus(resp.StatusCode) {
			statusErr = crerr.Mark(statusErr, errTransient)
		}
		c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "status", resp.StatusCode)
		return nil, statusErr
	}

	return raw, nil
}

func toDomainMatch(item matchDTO) (match.Match, error) {
	kickoff, err := time.Parse(time.RFC3339, strings.TrimSpace(item.UTCDate))
	if err != nil {
		return match.Match{}, crerr.Wrapf(err, "parse utcDate %q", item.UTCDate)
	}

	return match.Match{
		ID:           item.ID,
		UTCDate:      kickoff.UTC(),
		Status:       strings.TrimSpace(item.Status),
		HomeTeamName: strings.TrimSpace(item.HomeTeam.Name),
		AwayTeamName: strings.TrimSpace(item.AwayTeam.Name),
		HomeScore:    item.Score.FullTime.Home,
		AwayScore:    item.Score.FullTime.Away,
	}, nil
}

func isTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

// Rate limiting (429) and server errors count against the breaker; other
// 4xx responses are caller mistakes and do not.
func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return value
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
