package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/league-scheduler/internal/league"
	"github.com/mauv0809/league-scheduler/internal/planner"
	"github.com/mauv0809/league-scheduler/internal/schedule"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) GenerateMatchupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID := r.URL.Query().Get("seasonID")
		if seasonID == "" {
			http.Error(w, "seasonID is required", http.StatusBadRequest)
			return
		}

		count, err := s.Planner.GenerateMatchups(seasonID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]any{"season_id": seasonID, "count": count})
	}
}

func (s *Server) RegenerateMatchupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID := r.URL.Query().Get("seasonID")
		if seasonID == "" {
			http.Error(w, "seasonID is required", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("confirm") != "true" {
			http.Error(w, "regeneration deletes all matchups and placements; pass confirm=true", http.StatusBadRequest)
			return
		}

		count, err := s.Planner.RegenerateMatchups(seasonID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]any{"season_id": seasonID, "count": count})
	}
}

type generateScheduleRequest struct {
	SeasonID        string   `json:"season_id"`
	Dates           []string `json:"dates"`
	StartTime       string   `json:"start_time"`
	SlotsPerEvening int      `json:"slots_per_evening"`
}

func (s *Server) GenerateScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.SeasonID == "" {
			http.Error(w, "season_id is required", http.StatusBadRequest)
			return
		}

		summary, err := s.Planner.GenerateSchedule(req.SeasonID, req.Dates, req.StartTime, req.SlotsPerEvening, isDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, summary)
	}
}

type saveScheduleRequest struct {
	SeasonID   string                   `json:"season_id"`
	Events     []league.EventRecord     `json:"events"`
	Placements []league.PlacementRecord `json:"placements"`
}

func (s *Server) SaveScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.SeasonID == "" {
			http.Error(w, "season_id is required", http.StatusBadRequest)
			return
		}

		if err := s.Planner.SaveSchedule(req.SeasonID, req.Events, req.Placements, isDryRunFromContext(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Schedule saved.")
	}
}

func (s *Server) GetScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID := r.URL.Query().Get("seasonID")
		if seasonID == "" {
			http.Error(w, "seasonID is required", http.StatusBadRequest)
			return
		}

		view, err := s.Planner.GetScheduleForSeason(seasonID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, view)
	}
}

func (s *Server) CapacityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID := r.URL.Query().Get("seasonID")
		if seasonID == "" {
			http.Error(w, "seasonID is required", http.StatusBadRequest)
			return
		}
		dateCount, err := strconv.Atoi(r.URL.Query().Get("dates"))
		if err != nil || dateCount < 0 {
			http.Error(w, "dates must be a non-negative integer", http.StatusBadRequest)
			return
		}
		slotsPerEvening := 0
		if raw := r.URL.Query().Get("slots"); raw != "" {
			slotsPerEvening, err = strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "slots must be an integer", http.StatusBadRequest)
				return
			}
		}

		estimate, err := s.Planner.EstimateCapacity(seasonID, dateCount, slotsPerEvening)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, estimate)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the scheduler's typed errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var notFound *schedule.NotFoundError
	var conflict *schedule.TimeConflictError
	switch {
	case errors.Is(err, schedule.ErrAlreadyExists), errors.Is(err, schedule.ErrSlotOccupied):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, planner.ErrPartialPlacement):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &conflict):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Error("Request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
