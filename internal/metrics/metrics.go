package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decision Engine Metrics
var (
	// DecisionsTotal tracks arbitration calls by outcome (selected/empty)
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yueli_decisions_total",
			Help: "Total arbitration calls by outcome",
		},
		[]string{"outcome"},
	)

	// DecisionDuration tracks arbitration latency in seconds
	DecisionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "yueli_decision_duration_seconds",
			Help:    "Arbitration call duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
	)

	// MaskedCandidatesTotal tracks catalog entries excluded by polarity masking
	MaskedCandidatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yueli_masked_candidates_total",
			Help: "Total catalog entries excluded by sentiment masking",
		},
	)

	// SelfFeedbackTotal tracks self-feedback writes into the emotion store
	SelfFeedbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yueli_self_feedback_total",
			Help: "Total self-feedback mood updates",
		},
	)
)

// Emotion Store Metrics
var (
	// TrackedConversations tracks the number of conversations with emotion state
	TrackedConversations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "yueli_tracked_conversations",
			Help: "Number of conversations with tracked emotion state",
		},
	)

	// PrunedConversationsTotal tracks conversations dropped by the idle sweep
	PrunedConversationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yueli_pruned_conversations_total",
			Help: "Total conversations removed by the idle TTL sweep",
		},
	)
)

// Ingest Pipeline Metrics
var (
	// IngestEventsTotal tracks ingested events by type and disposition
	IngestEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yueli_ingest_events_total",
			Help: "Total ingested events by type and disposition (queued/dropped)",
		},
		[]string{"type", "disposition"},
	)

	// IngestQueueDepth tracks the current priority queue depth
	IngestQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "yueli_ingest_queue_depth",
			Help: "Current number of events waiting in the priority queue",
		},
	)
)

// Transport Metrics
var (
	// TransportConnected reports whether the brain link is up (0/1)
	TransportConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "yueli_transport_connected",
			Help: "Whether the reasoning-service link is connected (0/1)",
		},
	)

	// TransportMessagesTotal tracks transport traffic by direction
	TransportMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yueli_transport_messages_total",
			Help: "Total transport messages by direction (sent/received)",
		},
		[]string{"direction"},
	)
)

// Motion Metrics
var (
	// MotionTriggersTotal tracks physical triggers by result
	MotionTriggersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yueli_motion_triggers_total",
			Help: "Total motion triggers by result (ok/failed/unknown)",
		},
		[]string{"result"},
	)

	// MotionSubstitutionsTotal tracks decisions that overrode the requested action
	MotionSubstitutionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yueli_motion_substitutions_total",
			Help: "Total decisions whose pick differed from the requested action",
		},
	)
)

// NewDecisionTimer returns a timer observing into DecisionDuration.
func NewDecisionTimer() *prometheus.Timer {
	return prometheus.NewTimer(DecisionDuration)
}
