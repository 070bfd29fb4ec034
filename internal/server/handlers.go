package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/danieljhkim/missionfuel/internal/ctxlog"
	"github.com/danieljhkim/missionfuel/internal/engine"
	"github.com/danieljhkim/missionfuel/internal/planner"
)

type fuelRequest struct {
	Mass   *float64 `json:"mass"`
	Action string   `json:"action"`
	Body   string   `json:"body"`
}

type missionRequest struct {
	Mass  *float64 `json:"mass"`
	Steps []string `json:"steps"`
}

type validateRequest struct {
	Steps []string `json:"steps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlanets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Planets(r.Context()))
}

func (s *Server) handleFuel(w http.ResponseWriter, r *http.Request) {
	var req fuelRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Mass == nil {
		writeError(w, http.StatusBadRequest, "mass is required")
		return
	}

	result, err := s.engine.Fuel(r.Context(), &engine.FuelRequest{
		Mass:   *req.Mass,
		Action: req.Action,
		Body:   req.Body,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMission(w http.ResponseWriter, r *http.Request) {
	var req missionRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Mass == nil {
		writeError(w, http.StatusBadRequest, "mass is required")
		return
	}

	result, err := s.engine.Mission(r.Context(), &engine.MissionRequest{
		Mass:  *req.Mass,
		Steps: req.Steps,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("ETag", `"`+result.Fingerprint+`"`)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := s.engine.Validate(r.Context(), &engine.ValidateRequest{Steps: req.Steps})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// fail maps engine errors to HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		ctxlog.FromContext(r.Context()).Error("request failed", "error", err)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrInvalidMass), errors.Is(err, planner.ErrInvalidStep):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
