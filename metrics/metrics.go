package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AssetRequests counts binary asset requests by kind and outcome ("ok", "not_found", "error")
	AssetRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astack_asset_requests_total",
			Help: "Total number of picture asset requests",
		},
		[]string{"kind", "result"},
	)

	AssetBytesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astack_asset_bytes_served_total",
			Help: "Total number of asset bytes written to clients",
		},
		[]string{"kind"},
	)

	// StatusChecks counts batch status checks by resulting state
	StatusChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astack_status_checks_total",
			Help: "Total number of batch status checks",
		},
		[]string{"state"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astack_http_requests_total",
			Help: "Total number of HTTP requests by method and status code",
		},
		[]string{"method", "status"},
	)
)
