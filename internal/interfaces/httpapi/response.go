package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday/internal/usecase"
)

const googleAPIVersion = "2.0"

// resultEnvelope is a tagged result: success carries data, failure carries
// error. The transport status is always 200.
type resultEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Success    bool       `json:"success"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, resultEnvelope{
		APIVersion: googleAPIVersion,
		Success:    true,
		Data:       data,
	})
}

func writeFailure(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeFailure")
	defer span.End()

	writeJSON(ctx, w, resultEnvelope{
		APIVersion: googleAPIVersion,
		Success:    false,
		Error:      mapError(err),
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, resultEnvelope{
		APIVersion: googleAPIVersion,
		Success:    false,
		Error: &errorBody{
			Kind:       "internal",
			Message:    "internal server error",
			Status:     http.StatusInternalServerError,
			StatusText: http.StatusText(http.StatusInternalServerError),
		},
	})
}

func mapError(err error) *errorBody {
	var failure *usecase.ProbeFailure
	if errors.As(err, &failure) {
		return &errorBody{
			Kind:       string(failure.Kind),
			Message:    failure.Message,
			Status:     failure.Status,
			StatusText: failure.StatusText,
		}
	}

	body := &errorBody{Message: err.Error()}
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		body.Kind = "invalidInput"
	case errors.Is(err, usecase.ErrNotFound):
		body.Kind = "notFound"
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		body.Kind = string(usecase.ProbeUnavailable)
	default:
		body.Kind = "internal"
	}
	return body
}
