package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "goalfund"

// Recorder receives ledger events.
type Recorder interface {
	GoalCreated(currency string)
	ContributorAdded()
	PaymentRecorded(currency string, amount decimal.Decimal)
	GoalCompleted(currency string)
}

type ledgerMetrics struct {
	goalsCreated      *prometheus.CounterVec
	goalsCompleted    *prometheus.CounterVec
	contributorsAdded prometheus.Counter
	paymentsRecorded  *prometheus.CounterVec
	paymentAmount     *prometheus.HistogramVec
}

// New registers the ledger metrics on registry.
func New(registry prometheus.Registerer) Recorder {
	factory := promauto.With(registry)

	return &ledgerMetrics{
		goalsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "goals_created_total",
				Help:      "The total number of created goals",
			},
			[]string{"currency"},
		),
		goalsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "goals_completed_total",
				Help:      "The total number of goals that reached their target",
			},
			[]string{"currency"},
		),
		contributorsAdded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contributors_added_total",
				Help:      "The total number of contributors added to goals",
			},
		),
		paymentsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_recorded_total",
				Help:      "The total number of recorded payments",
			},
			[]string{"currency"},
		),
		paymentAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "payment_amount",
				Help:      "Payment amounts distribution",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 6), // 1, 10, 100, 1000, 10000, 100000
			},
			[]string{"currency"},
		),
	}
}

func (m *ledgerMetrics) GoalCreated(currency string) {
	m.goalsCreated.WithLabelValues(currency).Inc()
}

func (m *ledgerMetrics) ContributorAdded() {
	m.contributorsAdded.Inc()
}

func (m *ledgerMetrics) PaymentRecorded(currency string, amount decimal.Decimal) {
	m.paymentsRecorded.WithLabelValues(currency).Inc()
	value, _ := amount.Float64()
	m.paymentAmount.WithLabelValues(currency).Observe(value)
}

func (m *ledgerMetrics) GoalCompleted(currency string) {
	m.goalsCompleted.WithLabelValues(currency).Inc()
}

type nopRecorder struct{}

// Nop returns a Recorder that drops everything.
func Nop() Recorder {
	return nopRecorder{}
}

func (nopRecorder) GoalCreated(string)                      {}
func (nopRecorder) ContributorAdded()                       {}
func (nopRecorder) PaymentRecorded(string, decimal.Decimal) {}
func (nopRecorder) GoalCompleted(string)                    {}
