package api

import (
	"encoding/json"
	"errors"
	"math"
	"mime"
	"net/http"

	"coordbench/pkg/bench"
)

// Handlers holds the HTTP handlers.
type Handlers struct {
	systems SystemsResponse
}

// NewHandlers creates handlers for the registered distance systems.
func NewHandlers() *Handlers {
	var resp SystemsResponse
	for _, s := range bench.Systems() {
		resp.Systems = append(resp.Systems, SystemJSON{
			Name:       s.Name,
			CalcType:   string(s.Kind),
			Components: components(s.Name),
		})
	}
	return &Handlers{systems: resp}
}

// HandleDistance handles POST /api/v1/distance.
func (h *Handlers) HandleDistance(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req DistanceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	if !finite(req.P1) {
		writeError(w, http.StatusBadRequest, "invalid_point", "p1")
		return
	}
	if !finite(req.P2) {
		writeError(w, http.StatusBadRequest, "invalid_point", "p2")
		return
	}
	if req.Radius != nil && (!finite([]float64{*req.Radius}) || *req.Radius < 0) {
		writeError(w, http.StatusBadRequest, "invalid_radius", "radius")
		return
	}

	sys, err := bench.Lookup(req.System)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_system", "system")
		return
	}

	d, err := computeDistance(sys, req.P1, req.P2, req.Radius)
	if err != nil {
		switch {
		case errors.Is(err, ErrDimensionMismatch):
			writeError(w, http.StatusBadRequest, "dimension_mismatch", "")
		case errors.Is(err, ErrRadiusNotAllowed):
			writeError(w, http.StatusBadRequest, "radius_not_allowed", "radius")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		writeError(w, http.StatusUnprocessableEntity, "non_finite_result", "")
		return
	}

	writeJSON(w, DistanceResponse{System: sys.Name, CalcType: string(sys.Kind), Distance: d})
}

// HandleConvert handles POST /api/v1/convert.
func (h *Handlers) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}
	if !finite(req.Point) {
		writeError(w, http.StatusBadRequest, "invalid_point", "point")
		return
	}

	to, p, err := convert(req.From, req.Point)
	if err != nil {
		if errors.Is(err, ErrUnknownRepresentation) {
			writeError(w, http.StatusBadRequest, "unknown_representation", "from")
			return
		}
		writeError(w, http.StatusBadRequest, "dimension_mismatch", "point")
		return
	}
	if !finite(p) {
		writeError(w, http.StatusUnprocessableEntity, "non_finite_result", "")
		return
	}

	writeJSON(w, ConvertResponse{To: to, Point: p})
}

// HandleSystems handles GET /api/v1/systems.
func (h *Handlers) HandleSystems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.systems)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{Status: "ok"})
}

func isJSON(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == "application/json"
}

func finite(p []float64) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
