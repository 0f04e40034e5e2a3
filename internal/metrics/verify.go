package metrics

import (
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifyBundleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartcoin",
		Subsystem: "verify",
		Name:      "bundle_total",
		Help:      "Count of verified spend bundles.",
	}, []string{"network", "status"})

	verifyBundleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "smartcoin",
		Subsystem: "verify",
		Name:      "bundle_duration_seconds",
		Help:      "Duration of verifying a spend bundle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	verifyLayerTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartcoin",
		Subsystem: "verify",
		Name:      "layer_total",
		Help:      "Count of recognized puzzle stacks by shape.",
	}, []string{"network", "layers"})
)

type Verify struct {
	network model.Network
}

func NewVerify(network model.Network) *Verify {
	if network == "" {
		network = "unknown"
	}
	return &Verify{network: network}
}

func (m Verify) ObserveBundle(err error, started time.Time) {
	status := statusOf(err)
	verifyBundleTotal.WithLabelValues(string(m.network), status).Inc()
	verifyBundleDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

func (m Verify) ObserveLayers(layers string) {
	verifyLayerTotal.WithLabelValues(string(m.network), layers).Inc()
}
