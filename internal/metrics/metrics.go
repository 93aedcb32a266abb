package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "academic_service"

// Enrollment outcomes recorded by RecordEnrollment.
const (
	EnrollmentCreated  = "created"
	EnrollmentRemoved  = "removed"
	EnrollmentRejected = "rejected_full"
)

type Metrics struct {
	registry *prometheus.Registry

	studentsCreated prometheus.Counter
	coursesCreated  prometheus.Counter
	enrollments     *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers all collectors on a dedicated registry, so several instances
// can coexist in one process (tests).
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		studentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_created_total",
			Help:      "Total number of students created",
		}),
		coursesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "courses_created_total",
			Help:      "Total number of courses created",
		}),
		enrollments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrollments_total",
			Help:      "Enrollment operations by outcome",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	registry.MustRegister(
		m.studentsCreated,
		m.coursesCreated,
		m.enrollments,
		m.httpRequests,
		m.httpRequestDuration,
	)
	return m
}

// NewMock creates a no-op Metrics instance for testing
// The returned Metrics will safely ignore all Record* calls
func NewMock() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordStudentCreated() {
	if m != nil && m.studentsCreated != nil {
		m.studentsCreated.Inc()
	}
}

func (m *Metrics) RecordCourseCreated() {
	if m != nil && m.coursesCreated != nil {
		m.coursesCreated.Inc()
	}
}

func (m *Metrics) RecordEnrollment(result string) {
	if m != nil && m.enrollments != nil {
		m.enrollments.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil || m.httpRequests == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
