package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy11/internal/usecase"
)

func (h *Handler) SubmitTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitTeamRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	team, err := h.scoringService.SubmitTeam(ctx, usecase.SubmitTeamInput{
		UserID:    principal.UserID,
		MatchID:   matchID,
		LeagueID:  req.LeagueID,
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit team failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fantasyTeamToDTO(team))
}

func (h *Handler) GetMyTeamPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeamPoints")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	result, err := h.scoringService.TeamPoints(ctx, principal.UserID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team points failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamPointsDTO{
		TeamID:    result.Team.ID,
		MatchID:   result.Team.MatchID,
		Points:    result.Points,
		Finalized: result.Finalized,
	})
}

func (h *Handler) ListPlayerPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPoints")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	points, err := h.scoringService.PlayerPoints(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player points failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerPointsDTO, 0, len(points))
	for _, p := range points {
		items = append(items, playerPointsDTO{PlayerID: p.PlayerID, Points: p.Points})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecordMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchStats")
	defer span.End()

	var req recordStatsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	recorded, err := h.scoringService.RecordStats(ctx, matchID, req.Stats)
	if err != nil {
		h.logger.WarnContext(ctx, "record match stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, recordStatsDTO{MatchID: matchID, Recorded: recorded})
}

func (h *Handler) FinalizeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	result, err := h.scoringService.FinalizeMatch(ctx, matchID)
	if err != nil {
		h.logger.ErrorContext(ctx, "finalize match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, finalizeDTO{
		MatchID:     result.MatchID,
		TeamsScored: result.TeamsScored,
		PlayerCount: result.PlayerCount,
	})
}
