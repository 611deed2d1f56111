// Copyright 2018 Meridian Labs, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/prometheus/client_golang/prometheus"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "meridian",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Count of API requests by method and response status",
	},
	[]string{
		"method",
		"status",
	},
)

var requestLatency = prometheus.NewSummaryVec(
	prometheus.SummaryOpts{
		Namespace: "meridian",
		Subsystem: "client",
		Name:      "request_seconds",
		Help:      "API request latency by method",
	},
	[]string{
		"method",
	},
)

func init() {
	prometheus.MustRegister(requestCount, requestLatency)
}

func prometheusLabels(method, status string) prometheus.Labels {
	return prometheus.Labels{
		"method": method,
		"status": status,
	}
}
