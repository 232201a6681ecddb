/*
Package observability turns store lifecycle hooks into Prometheus metrics.

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	st := store.New(initial, store.WithName("search"), store.WithLifecycleHooks(metrics.Hooks()))

Every metric is labeled by store name, so one Metrics value can serve all
stores of a process.
*/
package observability
