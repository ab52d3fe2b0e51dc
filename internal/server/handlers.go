package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Leganyst/sitter-search/internal/availability"
	"github.com/Leganyst/sitter-search/internal/geo"
	"github.com/Leganyst/sitter-search/internal/obs"
	"github.com/Leganyst/sitter-search/internal/repository"
	"github.com/Leganyst/sitter-search/internal/search"
)

// Handler — HTTP-обёртка над поисковым ядром. Разбор query-строки в
// типизированный search.Query живёт здесь, движок сырых параметров
// не видит.
type Handler struct {
	svc     *search.Service
	metrics *obs.Metrics
	log     *slog.Logger
}

func NewHandler(svc *search.Service, m *obs.Metrics, log *slog.Logger) *Handler {
	return &Handler{svc: svc, metrics: m, log: log}
}

// Search — GET /api/sitters/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncSearches()

	q, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Search(r.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrInvalidQuery), errors.Is(err, availability.ErrInvalidRange):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("sitter search failed", "err", err)
			writeError(w, http.StatusInternalServerError, "error searching for sitters")
		}
		return
	}

	h.metrics.ObserveCandidates(res.Total)
	writeJSON(w, http.StatusOK, res)
}

// Profile — GET /api/sitters/{id}.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncProfileLookups()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sitter id")
		return
	}

	profile, err := h.svc.Profile(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "Sitter not found")
		default:
			h.log.Error("sitter profile failed", "err", err, "sitter_id", id)
			writeError(w, http.StatusInternalServerError, "error fetching sitter profile")
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Healthz — GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseSearchQuery переводит query-строку в search.Query. Здесь только
// разбор типов; валидация диапазонов значений — дело движка.
func parseSearchQuery(r *http.Request) (search.Query, error) {
	var q search.Query
	values := r.URL.Query()

	lat, err := strconv.ParseFloat(values.Get("lat"), 64)
	if err != nil {
		return q, errors.New("lat: number required")
	}
	lng, err := strconv.ParseFloat(values.Get("lng"), 64)
	if err != nil {
		return q, errors.New("lng: number required")
	}
	q.Origin = geo.Point{Lat: lat, Lng: lng}

	start, err := time.Parse(time.DateOnly, values.Get("start"))
	if err != nil {
		return q, errors.New("start: date in YYYY-MM-DD required")
	}
	end, err := time.Parse(time.DateOnly, values.Get("end"))
	if err != nil {
		return q, errors.New("end: date in YYYY-MM-DD required")
	}
	rng, err := availability.NewRange(start, end)
	if err != nil {
		return q, err
	}
	q.Range = rng

	if v := values.Get("page"); v != "" {
		q.Page, err = strconv.Atoi(v)
		if err != nil {
			return q, errors.New("page: integer required")
		}
	}
	if v := values.Get("pageSize"); v != "" {
		q.PageSize, err = strconv.Atoi(v)
		if err != nil {
			return q, errors.New("pageSize: integer required")
		}
	}

	q.PetSize = search.PetSize(values.Get("petSize"))
	q.Sort = search.SortPolicy(values.Get("sort"))

	// needs передаётся повторяющимся параметром или списком через
	// запятую; пустые элементы отбрасываются.
	for _, raw := range values["needs"] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				q.Needs = append(q.Needs, tag)
			}
		}
	}

	return q, nil
}
