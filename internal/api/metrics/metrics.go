// Package metrics defines and registers all custom Prometheus metrics for
// the career advisor API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "advisor"

// ── Advice metrics ────────────────────────────────────────────────────────────

// AdviceRequestsTotal counts advice requests that completed successfully.
// Labels:
//   - kind: the advice kind (e.g. "career_paths", "skill_gap")
//   - provider: "mock" or "gemini"
var AdviceRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advice_requests_total",
		Help:      "Total number of advice requests successfully served.",
	},
	[]string{"kind", "provider"},
)

// AdviceErrorsTotal counts advice requests that failed.
// Labels:
//   - kind: the advice kind
//   - reason: "upstream" or "invalid_shape"
var AdviceErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advice_errors_total",
		Help:      "Total number of advice requests that failed.",
	},
	[]string{"kind", "reason"},
)

// AdviceRequestDuration measures how long one advice request takes end-to-end.
var AdviceRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "advice_request_duration_seconds",
		Help:      "Duration of advice generation from request to parsed result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ── Ingestion metrics ─────────────────────────────────────────────────────────

// IngestionsTotal counts successful document extractions by document kind.
var IngestionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestions_total",
		Help:      "Total number of documents successfully converted to text.",
	},
	[]string{"kind"},
)

// IngestionErrorsTotal counts failed extractions.
// Label:
//   - reason: "unsupported_format", "pdf_parse", "ocr" or "other"
var IngestionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_errors_total",
		Help:      "Total number of document extractions that failed.",
	},
	[]string{"reason"},
)

// ── Account & contact metrics ─────────────────────────────────────────────────

// SignupsTotal counts created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// ContactMessagesTotal counts contact relay outcomes.
// Label:
//   - result: "sent" or "failed"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact-form submissions, by relay result.",
	},
	[]string{"result"},
)
