package swap

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	methodParametersCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_swap_method_parameters_total",
			Help: "Number of swap method parameters built, by router",
		},
		[]string{"router"},
	)
)

func init() {
	prometheus.MustRegister(methodParametersCounter)
}
