package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
)

const (
	ProbePrompt    = "Say 'API test successful' in 5 words or less."
	ProbeMaxTokens = 10
	DefaultModel   = "gpt-3.5-turbo"

	probeFlightKey = "chat-probe"
)

// ProbeFailureKind classifies why a chat probe did not succeed.
type ProbeFailureKind string

const (
	ProbeMissingCredential ProbeFailureKind = "missingCredential"
	ProbeUpstreamStatus    ProbeFailureKind = "upstreamStatus"
	ProbeNetwork           ProbeFailureKind = "network"
	ProbeDecode            ProbeFailureKind = "decode"
	ProbeUnavailable       ProbeFailureKind = "unavailable"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type ChatCompletion struct {
	ID               string
	Model            string
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// ChatCompleter sends one chat-completion request. Implementations return
// *UpstreamStatusError for non-2xx responses, wrap ErrUpstreamResponse for
// undecodable bodies and ErrDependencyUnavailable when short-circuited.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, apiKey string, req ChatCompletionRequest) (ChatCompletion, error)
}

type UpstreamStatusError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status=%d %s", e.StatusCode, e.StatusText)
}

// ProbeFailure is the soft error reported to HTTP callers.
type ProbeFailure struct {
	Kind       ProbeFailureKind `json:"kind"`
	Message    string           `json:"message"`
	Status     int              `json:"status,omitempty"`
	StatusText string           `json:"statusText,omitempty"`
	cause      error
}

func (f *ProbeFailure) Error() string {
	return string(f.Kind) + ": " + f.Message
}

func (f *ProbeFailure) Unwrap() error {
	return f.cause
}

type ProbeSuccess struct {
	Message   string `json:"message"`
	Model     string `json:"model"`
	Reply     string `json:"reply"`
	CheckedAt string `json:"checkedAt"`
	Cached    bool   `json:"cached"`
}

type ChatProbeConfig struct {
	APIKey   string
	Model    string
	CacheTTL time.Duration
}

// ChatProbeService verifies the chat-completion credential with one
// low-token request.
type ChatProbeService struct {
	client ChatCompleter
	apiKey string
	model  string
	cache  *cache.Store[ProbeSuccess]
	flight resilience.SingleFlight
	logger *logging.Logger
	now    func() time.Time
}

func NewChatProbeService(client ChatCompleter, cfg ChatProbeConfig, logger *logging.Logger) *ChatProbeService {
	if logger == nil {
		logger = logging.Default()
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	svc := &ChatProbeService{
		client: client,
		apiKey: strings.TrimSpace(cfg.APIKey),
		model:  model,
		logger: logger,
		now:    time.Now,
	}
	if cfg.CacheTTL > 0 {
		svc.cache = cache.NewStore[ProbeSuccess](cfg.CacheTTL)
	}
	return svc
}

func (s *ChatProbeService) HasCredential() bool {
	return s.apiKey != ""
}

// Probe returns a *ProbeFailure for every unsuccessful outcome.
func (s *ChatProbeService) Probe(ctx context.Context) (ProbeSuccess, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatProbeService.Probe")
	defer span.End()

	if !s.HasCredential() {
		return ProbeSuccess{}, &ProbeFailure{
			Kind:    ProbeMissingCredential,
			Message: "OPENAI_API_KEY is not configured",
		}
	}

	if s.cache != nil {
		out, hit, err := s.cache.GetOrLoad(ctx, probeFlightKey, s.call)
		if err != nil {
			return ProbeSuccess{}, s.classify(ctx, err)
		}
		out.Cached = hit
		return out, nil
	}

	v, err, shared := s.flight.Do(probeFlightKey, func() (any, error) {
		return s.call(ctx)
	})
	if err != nil {
		return ProbeSuccess{}, s.classify(ctx, err)
	}
	if shared {
		s.logger.DebugContext(ctx, "chat probe shared in-flight result")
	}
	return v.(ProbeSuccess), nil
}

func (s *ChatProbeService) call(ctx context.Context) (ProbeSuccess, error) {
	completion, err := s.client.CreateChatCompletion(ctx, s.apiKey, ChatCompletionRequest{
		Model:     s.model,
		Messages:  []ChatMessage{{Role: "user", Content: ProbePrompt}},
		MaxTokens: ProbeMaxTokens,
	})
	if err != nil {
		return ProbeSuccess{}, err
	}

	model := completion.Model
	if model == "" {
		model = s.model
	}
	s.logger.InfoContext(ctx, "chat probe succeeded", "model", model, "completion_tokens", completion.CompletionTokens)
	return ProbeSuccess{
		Message:   "Chat completion API is working",
		Model:     model,
		Reply:     strings.TrimSpace(completion.Content),
		CheckedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *ChatProbeService) classify(ctx context.Context, err error) *ProbeFailure {
	failure := &ProbeFailure{Message: err.Error(), cause: err}

	var statusErr *UpstreamStatusError
	switch {
	case errors.As(err, &statusErr):
		failure.Kind = ProbeUpstreamStatus
		failure.Status = statusErr.StatusCode
		failure.StatusText = statusErr.StatusText
		if failure.StatusText == "" {
			failure.StatusText = http.StatusText(statusErr.StatusCode)
		}
	case errors.Is(err, ErrDependencyUnavailable), errors.Is(err, resilience.ErrCircuitOpen):
		failure.Kind = ProbeUnavailable
	case errors.Is(err, ErrUpstreamResponse):
		failure.Kind = ProbeDecode
	default:
		failure.Kind = ProbeNetwork
	}

	s.logger.WarnContext(ctx, "chat probe failed",
		"kind", string(failure.Kind),
		"status", failure.Status,
		"error", err,
	)
	return failure
}
