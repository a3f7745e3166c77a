// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Chat messages handled, by classified intent",
		},
		[]string{"intent"},
	)

	ChatFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_fetch_failures_total",
			Help: "Chat replies degraded because backing data could not be fetched",
		},
		[]string{"intent"},
	)

	FitRecommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_quiz_submissions_total",
			Help: "Find My Fit quiz submissions, by recommendation path (rule or fallback)",
		},
		[]string{"path"},
	)

	FitLinkFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fit_recommendation_link_failures_total",
			Help: "Recommendation linkage rows that could not be written",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_cache_lookups_total",
			Help: "Chat data cache lookups, by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
