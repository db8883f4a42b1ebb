// Package server implements the HTTP JSON surface of the link server:
// link budget, RF exposure and pass evaluation on top of a loaded
// catalog.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/signalsfoundry/link-engineering/budget"
	"github.com/signalsfoundry/link-engineering/internal/logging"
	"github.com/signalsfoundry/link-engineering/internal/observability"
	"github.com/signalsfoundry/link-engineering/safety"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/signalsfoundry/link-engineering/internal/server"

// Server holds the shared state behind the HTTP handlers.
type Server struct {
	catalog   *budget.Catalog
	log       logging.Logger
	collector *observability.Collector
	tracer    trace.Tracer
}

// New constructs a Server. The collector may be nil, in which case no
// metrics are recorded.
func New(catalog *budget.Catalog, log logging.Logger, collector *observability.Collector) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		catalog:   catalog,
		log:       log,
		collector: collector,
		tracer:    otel.Tracer(tracerName),
	}
}

// Handler returns the routed HTTP handler for the API surface.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/v1/budget", s.instrument("/v1/budget", s.handleBudget))
	mux.Handle("/v1/safety", s.instrument("/v1/safety", s.handleSafety))
	mux.Handle("/v1/pass", s.instrument("/v1/pass", s.handlePass))
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

func (s *Server) instrument(route string, h http.HandlerFunc) http.Handler {
	if s.collector == nil {
		return h
	}
	return s.collector.Middleware(route, h)
}

// BudgetRequest is the POST /v1/budget payload. Transceivers are
// referenced by catalog ID.
type BudgetRequest struct {
	TxID string `json:"TxID"`
	RxID string `json:"RxID"`

	RangeKm        float64 `json:"RangeKm"`
	ElevationDeg   float64 `json:"ElevationDeg,omitempty"`
	FreqGHz        float64 `json:"FreqGHz,omitempty"`
	DataRateBps    float64 `json:"DataRateBps,omitempty"`
	RequiredEbNoDB float64 `json:"RequiredEbNoDB,omitempty"`
}

func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	ctx, log := logging.WithRequestLogger(r.Context(), s.log)
	ctx, span := s.tracer.Start(ctx, "Server.handleBudget")
	defer span.End()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.record("budget", "error")
		http.Error(w, "malformed request: "+err.Error(), http.StatusBadRequest)
		return
	}

	tx := s.catalog.GetTransceiver(req.TxID)
	rx := s.catalog.GetTransceiver(req.RxID)
	if tx == nil || rx == nil {
		s.record("budget", "error")
		http.Error(w, "unknown transceiver ID", http.StatusNotFound)
		return
	}
	span.SetAttributes(
		attribute.String("tx_id", req.TxID),
		attribute.String("rx_id", req.RxID),
		attribute.Float64("range_km", req.RangeKm),
	)

	result, err := budget.Evaluate(tx, rx, budget.LinkPath{
		RangeKm:        req.RangeKm,
		ElevationDeg:   req.ElevationDeg,
		FreqGHz:        req.FreqGHz,
		DataRateBps:    req.DataRateBps,
		RequiredEbNoDB: req.RequiredEbNoDB,
	})
	if err != nil {
		s.record("budget", "error")
		log.Warn(ctx, "budget evaluation rejected", logging.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.record("budget", "ok")
	log.Info(ctx, "budget evaluated",
		logging.String("tx_id", req.TxID),
		logging.String("rx_id", req.RxID),
		logging.Float64("cno_dbhz", result.CNoDBHz),
		logging.String("quality", string(result.Quality)),
	)
	writeJSON(w, result)
}

// SafetyRequest is the POST /v1/safety payload.
type SafetyRequest struct {
	DiameterM  float64 `json:"DiameterM"`
	FreqMHz    float64 `json:"FreqMHz"`
	PowerW     float64 `json:"PowerW"`
	Efficiency float64 `json:"Efficiency,omitempty"`
}

// SafetyResponse wraps the evaluation with its overall verdict.
type SafetyResponse struct {
	Compliant  bool `json:"Compliant"`
	Evaluation *safety.Evaluation
}

func (s *Server) handleSafety(w http.ResponseWriter, r *http.Request) {
	ctx, log := logging.WithRequestLogger(r.Context(), s.log)
	ctx, span := s.tracer.Start(ctx, "Server.handleSafety")
	defer span.End()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SafetyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.record("safety", "error")
		http.Error(w, "malformed request: "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Float64("diameter_m", req.DiameterM),
		attribute.Float64("freq_mhz", req.FreqMHz),
		attribute.Float64("power_w", req.PowerW),
	)

	eval, err := safety.Evaluate(safety.Input{
		DiameterM:  req.DiameterM,
		FreqMHz:    req.FreqMHz,
		PowerW:     req.PowerW,
		Efficiency: req.Efficiency,
	})
	if err != nil {
		s.record("safety", "error")
		log.Warn(ctx, "safety evaluation rejected", logging.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.record("safety", "ok")
	log.Info(ctx, "safety evaluated",
		logging.Float64("diameter_m", req.DiameterM),
		logging.Float64("power_w", req.PowerW),
		logging.Any("compliant", eval.Compliant()),
	)
	writeJSON(w, SafetyResponse{Compliant: eval.Compliant(), Evaluation: eval})
}

// PassRequest is the POST /v1/pass payload.
type PassRequest struct {
	StationID    string `json:"StationID"`
	SpacecraftID string `json:"SpacecraftID"`
	Direction    string `json:"Direction,omitempty"`

	Start           time.Time `json:"Start,omitempty"`
	DurationSeconds float64   `json:"DurationSeconds,omitempty"`
	IntervalSeconds float64   `json:"IntervalSeconds,omitempty"`

	DataRateBps    float64 `json:"DataRateBps,omitempty"`
	RequiredEbNoDB float64 `json:"RequiredEbNoDB,omitempty"`
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	ctx, log := logging.WithRequestLogger(r.Context(), s.log)
	ctx, span := s.tracer.Start(ctx, "Server.handlePass")
	defer span.End()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.record("pass", "error")
		http.Error(w, "malformed request: "+err.Error(), http.StatusBadRequest)
		return
	}

	station := s.catalog.GetStation(req.StationID)
	spacecraft := s.catalog.GetSpacecraft(req.SpacecraftID)
	if station == nil || spacecraft == nil {
		s.record("pass", "error")
		http.Error(w, "unknown station or spacecraft ID", http.StatusNotFound)
		return
	}

	direction := budget.Direction(req.Direction)
	if direction == "" {
		direction = budget.Downlink
	}

	start := req.Start
	if start.IsZero() {
		start = time.Now().UTC()
	}
	duration := time.Duration(req.DurationSeconds * float64(time.Second))
	if duration <= 0 {
		duration = 24 * time.Hour
	}
	span.SetAttributes(
		attribute.String("station_id", req.StationID),
		attribute.String("spacecraft_id", req.SpacecraftID),
		attribute.String("direction", string(direction)),
	)

	points, err := budget.EvaluatePass(s.catalog, budget.PassRequest{
		Station:        station,
		Spacecraft:     spacecraft,
		Direction:      direction,
		DataRateBps:    req.DataRateBps,
		RequiredEbNoDB: req.RequiredEbNoDB,
		Start:          start,
		End:            start.Add(duration),
		Interval:       time.Duration(req.IntervalSeconds * float64(time.Second)),
	})
	if err != nil {
		s.record("pass", "error")
		log.Warn(ctx, "pass evaluation rejected", logging.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.record("pass", "ok")
	log.Info(ctx, "pass evaluated",
		logging.String("station_id", req.StationID),
		logging.String("spacecraft_id", req.SpacecraftID),
		logging.Int("samples", len(points)),
	)
	writeJSON(w, points)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) record(kind, outcome string) {
	if s.collector != nil {
		s.collector.RecordEvaluation(kind, outcome)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
