package httpapi

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// ChatProber verifies the chat-completion credential.
type ChatProber interface {
	HasCredential() bool
	Probe(ctx context.Context) (usecase.ProbeSuccess, error)
}

// BuildInfo is echoed by the health endpoint.
type BuildInfo struct {
	Environment string
	Service     string
	Version     string
}

type Handler struct {
	prober ChatProber
	info   BuildInfo
	logger *logging.Logger
	now    func() time.Time
}

func NewHandler(prober ChatProber, info BuildInfo, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		prober: prober,
		info:   info,
		logger: logger,
		now:    time.Now,
	}
}

type healthDTO struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	GoVersion   string `json:"goVersion"`
	HasAPIKey   bool   `json:"hasApiKey"`
	Timestamp   string `json:"timestamp"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, map[string]string{"status": "ok"})
}

// Health echoes the runtime environment.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeSuccess(ctx, w, healthDTO{
		Status:      "ok",
		Environment: h.info.Environment,
		Service:     h.info.Service,
		Version:     h.info.Version,
		GoVersion:   runtime.Version(),
		HasAPIKey:   h.prober != nil && h.prober.HasCredential(),
		Timestamp:   h.now().UTC().Format(time.RFC3339),
	})
}

// TestOpenAI sends one low-token chat completion. Failures are reported in
// the body; the status code stays 200.
func (h *Handler) TestOpenAI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TestOpenAI")
	defer span.End()

	if h.prober == nil || !h.prober.HasCredential() {
		writeFailure(ctx, w, &usecase.ProbeFailure{
			Kind:    usecase.ProbeMissingCredential,
			Message: "OPENAI_API_KEY is not configured",
		})
		return
	}

	result, err := h.prober.Probe(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "chat probe failed", "error", err)
		writeFailure(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, result)
}
