package gemini

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridironstats/ncaafb-api/internal/platform/logging"
	"github.com/gridironstats/ncaafb-api/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	maxResponseBytes = 2 << 20
	maxSummaryRows   = 20
)

var apiKeyParamRegex = regexp.MustCompile(`key=[^&\s"']+`)
var errGeminiTransient = crerr.New("gemini transient failure")

// ErrUnavailable is returned when the circuit breaker rejects a call.
var ErrUnavailable = crerr.New("model provider is temporarily unavailable")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Model          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the Gemini generateContent API to turn a natural-language
// question plus a schema description into a candidate SQL statement, and to
// summarize result rows.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	model          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
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
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		model:          model,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker("gemini", breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// GenerateSQL asks the model for a single SELECT statement answering the
// question over the described schema. An empty model name falls back to the
// configured default. The returned text is the extracted statement, not yet
// validated.
func (c *Client) GenerateSQL(ctx context.Context, question, model, schemaContext string, maxResults int) (string, error) {
	resolved := c.resolveModel(model)
	prompt := buildPrompt(question, schemaContext, maxResults)

	// Identical concurrent questions collapse into one upstream call.
	text, err := c.generate(ctx, resolved, prompt, 1024, "sql:"+resolved+":"+question)
	if err != nil {
		return "", err
	}

	sql := ExtractSQL(text)
	if sql == "" {
		return "", crerr.Newf("no SQL statement in model output: %s", abbreviate(text))
	}

	return sql, nil
}

// Summarize asks the model for a short natural-language description of the
// result rows. Callers treat a failure as non-fatal.
func (c *Client) Summarize(ctx context.Context, question string, rows []map[string]any) (string, error) {
	prompt, err := buildSummaryPrompt(question, rows)
	if err != nil {
		return "", err
	}

	text, err := c.generate(ctx, c.model, prompt, 256, "")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (c *Client) resolveModel(model string) string {
	model = strings.TrimSpace(model)
	if model == "" {
		return c.model
	}
	return model
}

func (c *Client) generate(ctx context.Context, model, prompt string, maxTokens int, flightKey string) (string, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "gemini circuit breaker rejected request", "state", c.breaker.State())
			return "", ErrUnavailable
		}
	}

	body, err := sonic.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     0.1,
			MaxOutputTokens: maxTokens,
		},
	})
	if err != nil {
		return "", crerr.Wrap(err, "marshal generate request")
	}

	fullURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, url.PathEscape(model), url.QueryEscape(c.apiKey))

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("gemini.model", model),
			attribute.Int("gemini.prompt_bytes", len(prompt)),
		)
	}

	var raw []byte
	if flightKey == "" {
		raw, err = c.executeRequest(ctx, fullURL, body)
		c.recordCircuitResult(err)
	} else {
		out, flightErr, shared := c.flight.Do(flightKey, func() (any, error) {
			payload, reqErr := c.executeRequest(ctx, fullURL, body)
			c.recordCircuitResult(reqErr)
			return payload, reqErr
		})
		if flightErr != nil {
			return "", flightErr
		}
		if shared {
			c.logger.DebugContext(ctx, "gemini call deduplicated", "key_len", len(flightKey))
		}
		var ok bool
		raw, ok = out.([]byte)
		if !ok {
			return "", crerr.Newf("unexpected response payload type %T", out)
		}
	}
	if err != nil {
		return "", err
	}

	var decoded generateResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", crerr.Wrap(err, "decode generate response")
	}
	if decoded.PromptFeedback.BlockReason != "" {
		return "", crerr.Newf("prompt blocked by model: %s", decoded.PromptFeedback.BlockReason)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", crerr.New("model returned no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(string(body)))
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errGeminiTransient, c.sanitize(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errGeminiTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: model status=%d body=%s", errGeminiTransient, resp.StatusCode, abbreviate(string(raw)))
			default:
				return nil, fmt.Errorf("model status=%d body=%s", resp.StatusCode, abbreviate(string(raw)))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("model request failed")
	}
	c.logger.WarnContext(ctx, "gemini request failed", "url", redactURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err != nil && stderrors.Is(err, errGeminiTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "key=REDACTED")
}

func buildPrompt(question, schemaContext string, maxResults int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("You are an expert SQL generator for a college football statistics database running on PostgreSQL.\n\n")
	_, _ = buf.WriteString(schemaContext)
	_, _ = buf.WriteString("\n\nRules:\n")
	_, _ = buf.WriteString("1. Generate exactly one SELECT statement. Never generate INSERT, UPDATE, DELETE, DROP, or any other statement type.\n")
	_, _ = buf.WriteString("2. Use only the tables and columns listed above.\n")
	_, _ = buf.WriteString("3. Use PostgreSQL syntax. Prefer ILIKE for case-insensitive text matching.\n")
	_, _ = buf.WriteString("4. When a question names a team, match against both the market and name columns.\n")
	if maxResults > 0 {
		_, _ = buf.WriteString("5. Limit results to at most ")
		_, _ = buf.WriteString(strconv.Itoa(maxResults))
		_, _ = buf.WriteString(" rows.\n")
		_, _ = buf.WriteString("6. Return the statement inside a ```sql code fence with no commentary.\n")
	} else {
		_, _ = buf.WriteString("5. Return the statement inside a ```sql code fence with no commentary.\n")
	}
	_, _ = buf.WriteString("\nQuestion: ")
	_, _ = buf.WriteString(question)

	return buf.String()
}

func buildSummaryPrompt(question string, rows []map[string]any) (string, error) {
	clipped := rows
	if len(clipped) > maxSummaryRows {
		clipped = clipped[:maxSummaryRows]
	}
	encoded, err := sonic.Marshal(clipped)
	if err != nil {
		return "", crerr.Wrap(err, "marshal rows for summary")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("Answer the question in one or two plain sentences using only the query results below. Do not mention SQL or JSON.\n\n")
	_, _ = buf.WriteString("Question: ")
	_, _ = buf.WriteString(question)
	_, _ = buf.WriteString("\n\nResults (")
	_, _ = buf.WriteString(strconv.Itoa(len(rows)))
	_, _ = buf.WriteString(" total rows, first ")
	_, _ = buf.WriteString(strconv.Itoa(len(clipped)))
	_, _ = buf.WriteString(" shown):\n")
	_, _ = buf.Write(encoded)

	return buf.String(), nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apiKeyParamRegex.ReplaceAllString(rawURL, "key=REDACTED")
	}
	query := parsed.Query()
	if query.Has("key") {
		query.Set("key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviate(body string) string {
	text := strings.TrimSpace(body)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
