package api

// DistanceRequest is the JSON body for POST /api/v1/distance.
// Points are component lists in the order of the system's fields:
// [x, y], [r, theta], [x, y, z] or [r, theta, phi].
type DistanceRequest struct {
	System string    `json:"system"`
	P1     []float64 `json:"p1"`
	P2     []float64 `json:"p2"`
	Radius *float64  `json:"radius,omitempty"` // spherical_surface only
}

// DistanceResponse is the JSON response for a distance query.
type DistanceResponse struct {
	System   string  `json:"system"`
	CalcType string  `json:"calc_type"`
	Distance float64 `json:"distance"`
}

// ConvertRequest is the JSON body for POST /api/v1/convert.
type ConvertRequest struct {
	From  string    `json:"from"`
	Point []float64 `json:"point"`
}

// ConvertResponse is the JSON response for a conversion.
type ConvertResponse struct {
	To    string    `json:"to"`
	Point []float64 `json:"point"`
}

// SystemJSON describes one distance system.
type SystemJSON struct {
	Name       string `json:"name"`
	CalcType   string `json:"calc_type"`
	Components int    `json:"components"`
}

// SystemsResponse is the JSON response for GET /api/v1/systems.
type SystemsResponse struct {
	Systems []SystemJSON `json:"systems"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
