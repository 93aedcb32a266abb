package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academic-service/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := metrics.New()

	m.RecordStudentCreated()
	m.RecordStudentCreated()
	m.RecordCourseCreated()
	m.RecordEnrollment(metrics.EnrollmentCreated)
	m.RecordEnrollment(metrics.EnrollmentRejected)
	m.RecordHTTPRequest("/students", http.MethodGet, http.StatusOK, 5*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(),
		"academic_service_students_created_total",
		"academic_service_enrollments_total",
		"academic_service_http_requests_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "academic_service_students_created_total 2")
	assert.Contains(t, body, "academic_service_courses_created_total 1")
	assert.Contains(t, body, `academic_service_enrollments_total{result="rejected_full"} 1`)
	assert.Contains(t, body, `academic_service_http_requests_total{method="GET",route="/students",status="200"} 1`)
}

func TestMetrics_MockIsNoop(t *testing.T) {
	m := metrics.NewMock()

	assert.NotPanics(t, func() {
		m.RecordStudentCreated()
		m.RecordCourseCreated()
		m.RecordEnrollment(metrics.EnrollmentRemoved)
		m.RecordHTTPRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
	})

	var nilMetrics *metrics.Metrics
	assert.NotPanics(t, func() { nilMetrics.RecordStudentCreated() })
}
