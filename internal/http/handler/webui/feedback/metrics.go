package feedback

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bornholm/feedback/internal/http/handler/webui/common/form"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feedback",
		Name:      "submissions_total",
		Help:      "Number of feedback form submissions by outcome",
	}, []string{"outcome"})

	fieldErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feedback",
		Name:      "field_errors_total",
		Help:      "Number of validation errors reported by field",
	}, []string{"field"})
)

func observeFieldErrors(errs form.Errors) {
	for name, message := range errs {
		if message == "" {
			continue
		}

		fieldErrorsTotal.WithLabelValues(name).Inc()
	}
}
