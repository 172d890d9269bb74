// Package metrics defines all custom Prometheus metrics for the content API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "content"

// ContentCreatedTotal counts published and drafted articles by variant.
// Labels:
//   - type: "blog" or "case_study"
//   - status: the initial lifecycle status
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of articles created, by variant and initial status.",
	},
	[]string{"type", "status"},
)

// ContentViewsTotal counts slug reads that incremented a view counter.
// Label:
//   - type: "blog" or "case_study"
var ContentViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_total",
		Help:      "Total number of article views served.",
	},
	[]string{"type"},
)

// EngagementTotal counts engagement mutations (like, bookmark, share,
// download). There is no per-caller dedup, so this tracks calls, not users.
// Labels:
//   - type: "blog" or "case_study"
//   - action: the counter name
var EngagementTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "engagement_total",
		Help:      "Total number of engagement counter increments, by variant and action.",
	},
	[]string{"type", "action"},
)

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the fixed-window limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)
