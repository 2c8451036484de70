package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	"github.com/riskibarqy/fantasy11/internal/domain/user"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/riskibarqy/fantasy11/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy11"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(_ context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)

	// Internal error text stays in logs.
	message := err.Error()
	if mapped.HTTPStatus == http.StatusInternalServerError {
		message = "internal server error"
	}

	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: message,
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New("internal server error"))
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, wallet.ErrInsufficientBalance):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "insufficientBalance", Status: "FAILED_PRECONDITION"}
	case errors.Is(err, wallet.ErrInvalidAmount):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidAmount", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, scoring.ErrInvalidStats),
		errors.Is(err, scoring.ErrInvalidTeam):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidScoringInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, match.ErrInvalidStatus),
		errors.Is(err, league.ErrInvalidFilter),
		errors.Is(err, league.ErrInvalidSortKey),
		errors.Is(err, user.ErrInvalidName),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidMobile),
		errors.Is(err, user.ErrInvalidPassword):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"}
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, wallet.ErrAccountNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, league.ErrLeagueFull):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "leagueFull", Status: "ABORTED"}
	case errors.Is(err, usecase.ErrConflict),
		errors.Is(err, league.ErrAlreadyJoined),
		errors.Is(err, scoring.ErrStatsAlreadyRecorded),
		errors.Is(err, user.ErrDuplicate):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "conflict", Status: "ALREADY_EXISTS"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
	}
}
