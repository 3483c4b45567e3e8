package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/tenantrouter/forwarder"
	"code.cloudfoundry.org/tenantrouter/metrics"
	"code.cloudfoundry.org/tenantrouter/models"
	"code.cloudfoundry.org/tenantrouter/resolver"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CorrelationIDHeader is echoed on every response so a client can quote
// the request in a support ticket.
const CorrelationIDHeader = "X-Correlation-Id"

//go:generate counterfeiter -o fakes/route_resolver.go --fake-name RouteResolver . routeResolver
type routeResolver interface {
	Resolve(req *http.Request) (*models.RoutingDecision, models.CandidateSet, error)
}

//go:generate counterfeiter -o fakes/static_router.go --fake-name StaticRouter . staticRouter
type staticRouter interface {
	Match(path string) (models.CandidateSet, string, bool)
}

//go:generate counterfeiter -o fakes/destination_filter.go --fake-name DestinationFilter . destinationFilter
type destinationFilter interface {
	Filter(candidates models.CandidateSet, headers http.Header) models.CandidateSet
}

//go:generate counterfeiter -o fakes/destination_picker.go --fake-name DestinationPicker . destinationPicker
type destinationPicker interface {
	Pick(candidates models.CandidateSet) (models.Destination, bool)
}

//go:generate counterfeiter -o fakes/forward_executor.go --fake-name ForwardExecutor . forwardExecutor
type forwardExecutor interface {
	Forward(rw http.ResponseWriter, req *http.Request, dest models.Destination, remainderPath string) (forwarder.Outcome, error)
}

// Handler is the data-plane surface. It composes the per-request pipeline
// and is the only place that turns pipeline errors into client responses.
type Handler struct {
	Marshaler marshal.Marshaler
	Resolver  routeResolver
	Static    staticRouter
	Filter    destinationFilter
	Picker    destinationPicker
	Forwarder forwardExecutor
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	start := time.Now()
	correlationID := req.Header.Get(CorrelationIDHeader)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	rw.Header().Set(CorrelationIDHeader, correlationID)

	logger := log.WithFields(log.Fields{
		"correlationID": correlationID,
		"method":        req.Method,
		"path":          req.URL.Path,
	})

	decision, candidates, err := h.Resolver.Resolve(req)
	if err != nil {
		statusCode, description := statusForResolveError(err)
		logger.WithFields(log.Fields{"error": err, "status": statusCode}).Info("rejecting request")
		h.respondWithCode(statusCode, rw, description)
		return
	}

	remainderPath := decision.RemainderPath
	switch decision.Kind {
	case models.DecisionInvalid:
		logger.WithFields(log.Fields{"reason": decision.Reason}).Info("rejecting malformed request")
		h.respondWithCode(http.StatusBadRequest, rw, "invalid path")
		return
	case models.DecisionStatic:
		var cluster string
		var matched bool
		candidates, cluster, matched = h.Static.Match(req.URL.Path)
		if !matched {
			logger.Info("no route configured for path")
			h.respondWithCode(http.StatusNotFound, rw, "no route configured for path")
			return
		}
		logger = logger.WithFields(log.Fields{"cluster": cluster})
		// static routes forward the path as-is
		remainderPath = decision.OriginalPath
	}

	candidates = h.Filter.Filter(candidates, req.Header)

	dest, found := h.Picker.Pick(candidates)
	if !found {
		logger.WithFields(log.Fields{"tenant": decision.TenantID}).Info("no destination available after filtering")
		h.respondWithCode(http.StatusServiceUnavailable, rw, "no destination available")
		return
	}

	outcome, err := h.Forwarder.Forward(rw, req, dest, remainderPath)
	duration := time.Since(start)
	if err != nil {
		kind := forwardErrorKind(err)
		metrics.RecordForwardError(decision.TenantID, dest.ID, kind)
		failLogger := logger.WithFields(log.Fields{
			"error":       err,
			"tenant":      decision.TenantID,
			"destination": dest.ID,
			"errorKind":   kind,
		})
		if outcome.ResponseStarted {
			failLogger.Error("upstream failed mid-response, aborting connection")
			panic(http.ErrAbortHandler)
		}
		if kind == forwarder.RequestCanceled.String() {
			failLogger.Info("client canceled request before forward completed")
		} else {
			failLogger.Error("failed to forward request")
		}
		h.respondWithCode(http.StatusBadGateway, rw, "failed to forward request")
		return
	}

	metrics.RecordRequest(decision.TenantID, dest.ID, duration)
	logger.WithFields(log.Fields{
		"tenant":      decision.TenantID,
		"decision":    decision.Kind.String(),
		"destination": dest.ID,
		"status":      outcome.StatusCode,
		"durationMs":  float64(duration) / float64(time.Millisecond),
	}).Info("request completed")
}

func statusForResolveError(err error) (int, string) {
	switch {
	case errors.Is(err, resolver.MissingTenantParamError):
		return http.StatusBadRequest, resolver.MissingTenantParamError.Error()
	case errors.Is(err, resolver.NotReadyError):
		return http.StatusServiceUnavailable, resolver.NotReadyError.Error()
	case errors.Is(err, resolver.UnknownTenantError):
		return http.StatusNotFound, resolver.UnknownTenantError.Error()
	case errors.Is(err, resolver.ServiceNotConfiguredError):
		return http.StatusNotFound, resolver.ServiceNotConfiguredError.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func forwardErrorKind(err error) string {
	var forwardErr *forwarder.ForwardError
	if errors.As(err, &forwardErr) {
		return forwardErr.Kind.String()
	}
	return "unknown"
}

func (h *Handler) respondWithCode(statusCode int, w http.ResponseWriter, description string) {
	w.WriteHeader(statusCode)
	bytes, err := h.Marshaler.Marshal(errorResponse{Error: description})
	if err != nil {
		w.Write([]byte(fmt.Sprintf(`{"error": "%s"}`, description)))
		return
	}
	w.Write(bytes)
}
