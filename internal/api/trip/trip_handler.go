package trip

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/MdAdnan73/WanderMind-AI/internal/api"
	"github.com/MdAdnan73/WanderMind-AI/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ProcessQuery(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	tripService Service
	logger      *slog.Logger
}

func NewHandlerImpl(tripService Service, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create trip HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		tripService: tripService,
		logger:      logger,
	}
}

// ProcessQuery handles POST /api/v1/query. Validation failures are the only
// HTTP-level errors; pipeline failures come back as a 200 envelope with
// success=false.
func (h *HandlerImpl) ProcessQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "ProcessQuery", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/query"),
	))
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "ProcessQuery"))

	var req types.QueryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode query request", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if msg, ok := validateQueryRequest(req); !ok {
		l.WarnContext(ctx, "Query request failed validation", slog.String("reason", msg))
		span.SetStatus(codes.Error, "Validation failed")
		api.ErrorResponse(w, r, http.StatusBadRequest, msg)
		return
	}

	response := h.tripService.ProcessQuery(ctx, req)
	if !response.Success {
		span.SetStatus(codes.Error, response.Error)
	}

	api.WriteJSONResponse(w, r, http.StatusOK, response)
}

func validateQueryRequest(req types.QueryRequest) (string, bool) {
	if strings.TrimSpace(req.QueryText) == "" {
		return "queryText is required", false
	}
	if req.AgeGroup == "" {
		return "ageGroup is required", false
	}
	if req.VisitDate == "" {
		return "visitDate is required", false
	}
	start, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return "visitDate must be formatted as YYYY-MM-DD", false
	}
	if req.VisitDateEnd != "" {
		end, err := time.Parse("2006-01-02", req.VisitDateEnd)
		if err != nil {
			return "visitDateEnd must be formatted as YYYY-MM-DD", false
		}
		if end.Before(start) {
			return "visitDateEnd must not be before visitDate", false
		}
	}
	return "", true
}
