// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// AccessRequestsSent tracks access requests broadcast by this peer.
	AccessRequestsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mutex_access_requests_sent_total",
			Help: "Total critical-section requests broadcast by this peer",
		},
	)

	// AccessRequestsReceived tracks inbound access requests by decision.
	AccessRequestsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mutex_access_requests_received_total",
			Help: "Total inbound access requests by decision (granted/deferred)",
		},
		[]string{"decision"},
	)

	// RepliesReceived tracks Ricart-Agrawala replies consumed while WANTED.
	RepliesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mutex_replies_received_total",
			Help: "Total replies consumed toward entering the critical section",
		},
	)

	// ReleasesReceived tracks inbound release notices.
	ReleasesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mutex_releases_received_total",
			Help: "Total release notices received from other peers",
		},
	)

	// DeferredRepliesSent tracks withheld replies delivered at release.
	DeferredRepliesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mutex_deferred_replies_sent_total",
			Help: "Total deferred replies delivered to peers at release",
		},
	)

	// ProtocolViolations tracks ignored duplicate or unmatched messages.
	ProtocolViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mutex_protocol_violations_total",
			Help: "Total protocol messages rejected as duplicate or unmatched",
		},
	)

	// TransportErrors tracks failed peer calls by operation.
	TransportErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mutex_transport_errors_total",
			Help: "Total failed peer-to-peer calls by operation",
		},
		[]string{"operation"},
	)

	// MutexState tracks the current protocol state (0=released, 1=wanted, 2=held).
	MutexState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mutex_state",
			Help: "Current mutual-exclusion state (0=released, 1=wanted, 2=held)",
		},
	)

	// AcquireWaitDuration tracks how long this peer waited for all replies.
	AcquireWaitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mutex_acquire_wait_seconds",
			Help:    "Time spent waiting for all replies before entering the critical section",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// CriticalSectionDuration tracks how long the critical section was held.
	CriticalSectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mutex_critical_section_seconds",
			Help:    "Duration of the critical section (print call) in seconds",
			Buckets: []float64{.1, .5, 1, 2, 3, 5, 10, 30},
		},
	)

	// PrintJobsTotal tracks print jobs submitted by this peer, by status.
	PrintJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "print_jobs_total",
			Help: "Total print jobs submitted by status (success/rejected/error)",
		},
		[]string{"status"},
	)

	// PrintServerJobs tracks jobs processed by the print server, by status.
	PrintServerJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "print_server_jobs_total",
			Help: "Total jobs processed by the print server by status",
		},
		[]string{"status"},
	)

	// PrintServerDelay tracks the simulated printing delay.
	PrintServerDelay = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "print_server_delay_seconds",
			Help:    "Simulated printing delay in seconds",
			Buckets: []float64{.5, 1, 1.5, 2, 2.5, 3, 4, 5},
		},
	)

	// GRPCRequestsTotal tracks total gRPC requests served.
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grpc_requests_total",
			Help: "Total gRPC requests by method and status",
		},
		[]string{"method", "status"},
	)

	// GRPCRequestDuration tracks gRPC request duration.
	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// DatabaseQueryDuration tracks job-store query duration.
	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)
)

// RegisterMetricsEndpoint registers the /metrics endpoint on a Gin router.
func RegisterMetricsEndpoint(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// MetricsHandler returns the Prometheus HTTP handler.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// GRPCMetrics returns a gRPC unary server interceptor recording request
// counts and latency.
func GRPCMetrics() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := codes.OK
		if err != nil {
			if s, ok := status.FromError(err); ok {
				code = s.Code()
			} else {
				code = codes.Unknown
			}
		}

		GRPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		GRPCRequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// RecordAccessRequestSent records a critical-section request broadcast.
func RecordAccessRequestSent() {
	AccessRequestsSent.Inc()
}

// RecordAccessRequestReceived records an inbound access request decision.
func RecordAccessRequestReceived(decision string) {
	AccessRequestsReceived.WithLabelValues(decision).Inc()
}

// RecordReplyReceived records one consumed reply.
func RecordReplyReceived() {
	RepliesReceived.Inc()
}

// RecordReleaseReceived records an inbound release notice.
func RecordReleaseReceived() {
	ReleasesReceived.Inc()
}

// RecordDeferredReplySent records a withheld reply delivered at release.
func RecordDeferredReplySent() {
	DeferredRepliesSent.Inc()
}

// RecordProtocolViolation records an ignored duplicate or unmatched message.
func RecordProtocolViolation() {
	ProtocolViolations.Inc()
}

// RecordTransportError records a failed peer call.
func RecordTransportError(operation string) {
	TransportErrors.WithLabelValues(operation).Inc()
}

// SetMutexState sets the current protocol state gauge.
func SetMutexState(state float64) {
	MutexState.Set(state)
}

// ObserveAcquireWait records the time spent waiting to enter the critical section.
func ObserveAcquireWait(seconds float64) {
	AcquireWaitDuration.Observe(seconds)
}

// ObserveCriticalSection records the duration of a held critical section.
func ObserveCriticalSection(seconds float64) {
	CriticalSectionDuration.Observe(seconds)
}

// RecordPrintJob records a print job outcome seen by a peer.
func RecordPrintJob(status string) {
	PrintJobsTotal.WithLabelValues(status).Inc()
}

// RecordPrintServerJob records a job processed by the print server.
func RecordPrintServerJob(status string) {
	PrintServerJobs.WithLabelValues(status).Inc()
}

// ObservePrintServerDelay records the simulated printing delay.
func ObservePrintServerDelay(seconds float64) {
	PrintServerDelay.Observe(seconds)
}

// ObserveDatabaseQuery records a job-store query duration.
func ObserveDatabaseQuery(operation string, seconds float64) {
	DatabaseQueryDuration.WithLabelValues(operation).Observe(seconds)
}
