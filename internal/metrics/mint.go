package metrics

import (
	"time"

	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mintBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartcoin",
		Subsystem: "mint",
		Name:      "build_total",
		Help:      "Count of mint bundle builds.",
	}, []string{"network", "status"})

	mintBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "smartcoin",
		Subsystem: "mint",
		Name:      "build_duration_seconds",
		Help:      "Duration of building a mint bundle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	mintItems = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "smartcoin",
		Subsystem: "mint",
		Name:      "items",
		Help:      "Number of NFTs minted per bundle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})

	mintSelectedCoins = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "smartcoin",
		Subsystem: "mint",
		Name:      "selected_coins",
		Help:      "Number of funding coins selected per bundle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})
)

type Mint struct {
	network model.Network
}

func NewMint(network model.Network) *Mint {
	if network == "" {
		network = "unknown"
	}
	return &Mint{network: network}
}

func (m Mint) ObserveBuild(err error, items int, started time.Time) {
	status := statusOf(err)
	mintBuildTotal.WithLabelValues(string(m.network), status).Inc()
	mintBuildDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		mintItems.WithLabelValues(string(m.network)).Observe(float64(items))
	}
}

func (m Mint) ObserveCoinSelection(coins int) {
	mintSelectedCoins.WithLabelValues(string(m.network)).Observe(float64(coins))
}
