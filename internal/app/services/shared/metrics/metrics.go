// Package metrics holds the Prometheus collectors of the passwordless
// service. Collectors register with the default registry on import and are
// exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "passwordless_service"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	PathHTTP    = "http"
	PathTrigger = "trigger"

	// OutcomeError labels verifications that failed before validation ran.
	OutcomeError = "error"
)

var (
	// SignInTotal counts sign-in requests by delivery mode and result.
	SignInTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signin",
			Name:      "requests_total",
			Help:      "Total number of sign-in requests by delivery mode and result",
		},
		[]string{"mode", "result"}, // mode: email, whatsapp, passcode
	)

	// ChallengesIssuedTotal counts persisted challenges.
	ChallengesIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "challenge",
			Name:      "issued_total",
			Help:      "Total number of challenges written to the identity store",
		},
	)

	// ChallengeConflictsTotal counts conditional writes lost to a concurrent writer.
	ChallengeConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "challenge",
			Name:      "write_conflicts_total",
			Help:      "Total number of challenge writes rejected because the stored set changed",
		},
	)

	// VerifyTotal counts verifications by path and outcome.
	VerifyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verify",
			Name:      "attempts_total",
			Help:      "Total number of passcode verifications by path and outcome",
		},
		[]string{"path", "outcome"}, // outcome: success, no_challenge, expired, invalid, error
	)

	// DeepLinkRequestsTotal counts short-link calls by provider and result.
	DeepLinkRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "deeplink",
			Name:      "requests_total",
			Help:      "Total number of short link requests by provider and result",
		},
		[]string{"provider", "result"},
	)

	// DispatchTotal counts notification deliveries by channel, template and result.
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "dispatch_total",
			Help:      "Total number of notifications dispatched by channel, template and result",
		},
		[]string{"channel", "template", "result"},
	)
)

func result(ok bool) string {
	if ok {
		return ResultSuccess
	}
	return ResultFailure
}

func RecordSignIn(mode string, ok bool) {
	SignInTotal.WithLabelValues(mode, result(ok)).Inc()
}

func RecordChallengeIssued() {
	ChallengesIssuedTotal.Inc()
}

func RecordChallengeConflict() {
	ChallengeConflictsTotal.Inc()
}

func RecordVerify(path, outcome string) {
	VerifyTotal.WithLabelValues(path, outcome).Inc()
}

func RecordDeepLink(provider string, ok bool) {
	DeepLinkRequestsTotal.WithLabelValues(provider, result(ok)).Inc()
}

func RecordDispatch(channel, template string, ok bool) {
	DispatchTotal.WithLabelValues(channel, template, result(ok)).Inc()
}
