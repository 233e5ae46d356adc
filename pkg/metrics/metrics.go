package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path"},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AccountsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accounts_registered_total",
			Help: "Total number of accounts created through registration",
		},
	)

	LoginsSucceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_succeeded_total",
			Help: "Total number of successful logins",
		},
	)

	LoginsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_failed_total",
			Help: "Total number of rejected login attempts",
		},
	)

	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tokens_issued_total",
			Help: "Total number of bearer tokens issued",
		},
	)

	TokenVerificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_verifications_total",
			Help: "Total number of token verifications",
		},
	)

	TokenVerificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_verifications_failed_total",
			Help: "Total number of failed token verifications",
		},
	)
)
