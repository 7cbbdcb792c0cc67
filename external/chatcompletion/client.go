package chatcompletion

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
	"github.com/riskibarqy/matchday/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL   = "https://api.openai.com/v1"
	completionsPath  = "/chat/completions"
	maxErrorBodySize = 512
)

var errTransient = crerr.New("chat completion transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to an OpenAI compatible chat-completion endpoint.
type Client struct {
	httpClient *fasthttp.Client
	endpoint   string
	timeout    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "matchday",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   baseURL + completionsPath,
		timeout:    timeout,
		logger:     logger,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}
}

type completionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (c *Client) CreateChatCompletion(ctx context.Context, apiKey string, in usecase.ChatCompletionRequest) (usecase.ChatCompletion, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return usecase.ChatCompletion{}, fmt.Errorf("%w: api key is required", usecase.ErrInvalidInput)
	}

	body, err := sonic.Marshal(in)
	if err != nil {
		return usecase.ChatCompletion{}, crerr.Wrap(err, "encode chat completion request")
	}

	var raw []byte
	err = c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.do(ctx, apiKey, body)
		return reqErr
	}, isCircuitFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "chat completion circuit breaker rejected request", "state", c.breaker.State())
		return usecase.ChatCompletion{}, fmt.Errorf("%w: chat completion provider is temporarily unavailable: %w", usecase.ErrDependencyUnavailable, err)
	}
	if err != nil {
		return usecase.ChatCompletion{}, err
	}

	var decoded completionResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return usecase.ChatCompletion{}, fmt.Errorf("%w: decode chat completion: %v", usecase.ErrUpstreamResponse, err)
	}
	if len(decoded.Choices) == 0 {
		return usecase.ChatCompletion{}, fmt.Errorf("%w: chat completion has no choices", usecase.ErrUpstreamResponse)
	}

	return usecase.ChatCompletion{
		ID:               decoded.ID,
		Model:            decoded.Model,
		Content:          decoded.Choices[0].Message.Content,
		PromptTokens:     decoded.Usage.PromptTokens,
		CompletionTokens: decoded.Usage.CompletionTokens,
	}, nil
}

func (c *Client) do(ctx context.Context, apiKey string, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.SetBodyRaw(body)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		c.logger.WarnContext(ctx, "chat completion request failed", "endpoint", c.endpoint, "error", err)
		return nil, crerr.Mark(crerr.Wrap(err, "send chat completion request"), errTransient)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		statusErr := &usecase.UpstreamStatusError{
			StatusCode: status,
			StatusText: fasthttp.StatusMessage(status),
			Body:       abbreviateBody(resp.Body()),
		}
		c.logger.WarnContext(ctx, "chat completion returned non-success status", "status", status, "body", statusErr.Body)
		if isRetryableStatus(status) {
			return nil, crerr.Mark(statusErr, errTransient)
		}
		return nil, statusErr
	}

	return append([]byte(nil), resp.Body()...), nil
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errTransient)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > maxErrorBodySize {
		return body[:maxErrorBodySize] + "..."
	}
	return body
}
