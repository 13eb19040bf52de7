package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Shop Metrics
var (
	ItemsUpdated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpdated,
			Help: HelpTextItemsUpdated,
		},
		[]string{LabelCategory},
	)

	NegativeQuality = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNegativeQuality,
			Help: HelpTextNegativeQuality,
		},
	)

	DaysSimulated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysSimulated,
			Help: HelpTextDaysSimulated,
		},
	)
)

// WriteTextfile writes every metric registered with the default registry to
// path in the Prometheus text format, for pickup by a node exporter textfile
// collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf(ErrFmtWriteTextfileFailed, path, err)
	}
	return nil
}
