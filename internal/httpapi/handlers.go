// Package httpapi exposes the generator, validator, and edit-check
// core over HTTP so a roster-management front end can call them
// without shelling out to the CLI.
package httpapi

import (
	"encoding/json"
	mathrand "math/rand"
	"net/http"

	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/generator"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
	"github.com/carefacility/shiftgen/internal/validator"
)

type generateRequest struct {
	Staff    []*roster.Staff  `json:"staff"`
	Requests map[string][]int `json:"requests"`
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Settings config.Settings  `json:"settings"`
	Seed     int64            `json:"seed"`
}

type generateResponse struct {
	Grid     schedule.Grid           `json:"grid"`
	Warnings []string                `json:"warnings"`
	Summary  []schedule.StaffSummary `json:"summary"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	requests := make(map[string]map[int]bool, len(req.Requests))
	for id, days := range req.Requests {
		set := make(map[int]bool, len(days))
		for _, d := range days {
			set[d] = true
		}
		requests[id] = set
	}

	var rng *mathrand.Rand
	if req.Seed != 0 {
		rng = mathrand.New(mathrand.NewSource(req.Seed))
	}

	table, warnings := generator.Generate(req.Staff, req.Year, req.Month, requests, req.Settings, rng)

	byID := make(map[string]*roster.Staff, len(req.Staff))
	for _, s := range req.Staff {
		if s != nil {
			byID[s.ID] = s
		}
	}
	summary := schedule.Summarize(table, byID)

	writeJSON(w, http.StatusOK, generateResponse{Grid: schedule.ToGrid(table), Warnings: warnings, Summary: summary})
}

type validateRequest struct {
	Staff    []*roster.Staff `json:"staff"`
	Grid     schedule.Grid   `json:"grid"`
	Settings config.Settings `json:"settings"`
}

type validateResponse struct {
	Warnings []string `json:"warnings"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	table := schedule.FromGrid(req.Grid)
	warnings := validator.Validate(req.Staff, table, req.Grid.Year, req.Grid.Month, req.Settings.WithDefaults())
	writeJSON(w, http.StatusOK, validateResponse{Warnings: warnings})
}

type editWarningsRequest struct {
	Staff    *roster.Staff   `json:"staff"`
	Grid     schedule.Grid   `json:"grid"`
	Day      int             `json:"day"`
	Shift    string          `json:"shift"`
	Settings config.Settings `json:"settings"`
}

func (s *Server) handleEditWarnings(w http.ResponseWriter, r *http.Request) {
	var req editWarningsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	if req.Staff == nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "staff is required"})
		return
	}
	newShift, ok := shift.ParseType(req.Shift)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "unrecognized shift token"})
		return
	}

	table := schedule.FromGrid(req.Grid)
	req.Staff.Normalize()
	warnings := validator.EditWarnings(req.Staff, table, req.Day, newShift, req.Grid.Year, req.Grid.Month, req.Settings.WithDefaults())
	writeJSON(w, http.StatusOK, validateResponse{Warnings: warnings})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
