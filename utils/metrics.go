package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "evidence_manager"

var (
	MetricCasesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "cases_created_total",
		Help:      "Number of cases created",
	})
	MetricEvidencesUploaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "evidences_uploaded_total",
		Help:      "Number of evidence images stored",
	})
	MetricLoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "login_attempts_total",
		Help:      "Number of login attempts, by result",
	}, []string{"result"})
)
