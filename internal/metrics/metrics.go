// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PhotosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "photo_backend",
		Name:      "photos_created_total",
		Help:      "Number of photos persisted.",
	})

	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "photo_backend",
		Name:      "users_registered_total",
		Help:      "Number of users registered.",
	})

	// AuthRejections is labelled by the message returned to the client.
	AuthRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "photo_backend",
		Name:      "auth_rejections_total",
		Help:      "Requests rejected by the authentication gate.",
	}, []string{"reason"})
)
