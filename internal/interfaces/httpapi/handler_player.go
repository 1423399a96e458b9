package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/player-scout/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := q.page()
	if q.err != nil {
		writeError(ctx, w, q.err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.playerService.List(ctx, req.toRequest())
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "page", req.Page, "page_size", req.PageSize, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(page))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := searchQuery{pageQuery: q.page(), Q: q.str("q")}
	if q.err != nil {
		writeError(ctx, w, q.err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.playerService.Search(ctx, req.Q, req.toRequest())
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "q", req.Q, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(page))
}

func (h *Handler) FilterPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FilterPlayers")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := filterQuery{
		pageQuery:   q.page(),
		ShortName:   q.str("short_name"),
		LongName:    q.str("long_name"),
		ClubName:    q.str("club_name"),
		LeagueName:  q.str("league_name"),
		Nationality: q.str("nationality"),
		Positions:   q.str("player_positions"),
		AgeMin:      q.intPtr("age_min"),
		AgeMax:      q.intPtr("age_max"),
		OverallMin:  q.intPtr("overall_min"),
		OverallMax:  q.intPtr("overall_max"),
	}
	if q.err != nil {
		writeError(ctx, w, q.err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.playerService.Filter(ctx, usecase.FilterInput{
		ShortName:   req.ShortName,
		LongName:    req.LongName,
		ClubName:    req.ClubName,
		LeagueName:  req.LeagueName,
		Nationality: req.Nationality,
		Positions:   req.Positions,
		AgeMin:      req.AgeMin,
		AgeMax:      req.AgeMax,
		OverallMin:  req.OverallMin,
		OverallMax:  req.OverallMax,
	}, req.toRequest())
	if err != nil {
		h.logger.WarnContext(ctx, "filter players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(page))
}

func (h *Handler) TopKPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopKPlayers")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := topKQuery{
		K:           q.intValue("k"),
		Positions:   q.str("player_positions"),
		Nationality: q.str("nationality"),
		LeagueName:  q.str("league_name"),
		ClubName:    q.str("club_name"),
	}
	if q.err != nil {
		writeError(ctx, w, q.err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.TopK(ctx, usecase.TopKInput{
		K:           req.K,
		Positions:   req.Positions,
		Nationality: req.Nationality,
		LeagueName:  req.LeagueName,
		ClubName:    req.ClubName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "top-k players failed", "k", req.K, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) TopPlayersByCriteria(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayersByCriteria")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := topByCriteriaQuery{
		Criteria: strings.ToLower(q.str("criteria")),
		Value:    q.str("value"),
		K:        q.intValue("k"),
	}
	if q.err != nil {
		writeError(ctx, w, q.err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.TopByCriteria(ctx, usecase.TopByCriteriaInput{
		Criteria: req.Criteria,
		Value:    req.Value,
		K:        req.K,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "top players by criteria failed", "criteria", req.Criteria, "value", req.Value, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) BestTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BestTeam")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	req := bestTeamQuery{
		Formation:   q.str("formation"),
		LeagueName:  q.str("league_name"),
		Nationality: q.str("nationality"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.playerService.BestTeam(ctx, usecase.BestTeamInput{
		Formation:   req.Formation,
		LeagueName:  req.LeagueName,
		Nationality: req.Nationality,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "best team failed", "formation", req.Formation, "league_name", req.LeagueName, "nationality", req.Nationality, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bestTeamToDTO(result))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

// GetPlayerImage streams the photo bytes rather than a JSON envelope.
func (h *Handler) GetPlayerImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerImage")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	photo, err := h.photoService.Photo(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player image failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	contentType := photo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(photo.Body)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Image-Source", string(photo.Source))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(photo.Body)
}
