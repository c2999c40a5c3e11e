package dispatch

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	dispatchCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "absacc",
		Name:      "dispatch",
		Help:      "Number of envelopes dispatched",
	}, []string{"type_url"})

	dispatchErrorCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "absacc",
		Name:      "dispatch_error",
		Help:      "Number of envelope dispatch errors",
	}, []string{"type_url", "error_code"})
)

func registerMetrics() error {
	if err := prometheus.Register(dispatchCounterVec); err != nil {
		e, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return errors.Wrap(err, "failed to register dispatch counter")
		}
		dispatchCounterVec = e.ExistingCollector.(*prometheus.CounterVec)
	}

	if err := prometheus.Register(dispatchErrorCounterVec); err != nil {
		e, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return errors.Wrap(err, "failed to register dispatch error counter")
		}
		dispatchErrorCounterVec = e.ExistingCollector.(*prometheus.CounterVec)
	}

	return nil
}
