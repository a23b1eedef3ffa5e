package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthChecker reports whether the employee API answers.
type HealthChecker struct {
	apiHost    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHealthChecker(apiHost string, log *slog.Logger) *HealthChecker {
	clientTO := 5
	return &HealthChecker{
		apiHost:    apiHost,
		httpClient: &http.Client{Timeout: time.Duration(clientTO) * time.Second},
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	probe, err := http.NewRequestWithContext(req.Context(), http.MethodHead, h.apiHost, nil)
	var resp *http.Response
	if err == nil {
		resp, err = h.httpClient.Do(probe)
	}

	switch {
	case err != nil:
		status["employee_api"] = "unreachable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: employee api unreachable",
			"host", h.apiHost, "error", err)
	case resp.StatusCode >= http.StatusInternalServerError:
		status["employee_api"] = "degraded"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: employee api returned error status",
			"host", h.apiHost, "status_code", resp.StatusCode)
	default:
		status["employee_api"] = "ok"
	}
	if resp != nil {
		if err = resp.Body.Close(); err != nil {
			h.log.WarnContext(req.Context(), "Failed to close response body", "error", err)
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
