package growarray

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	growsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "growarray_grows_total",
		Help: "The total number of backing store reallocations",
	}, []string{"array"})

	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "growarray_sorts_total",
		Help: "The total number of sorts that reordered a buffer",
	}, []string{"array"})

	sortedElementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "growarray_sorted_elements_total",
		Help: "The total number of elements passed through sort buffers",
	}, []string{"array"})
)
