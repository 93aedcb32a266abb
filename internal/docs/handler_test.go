package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/smartystreets/goconvey/convey"
)

func TestDocsHandler(t *testing.T) {
	convey.Convey("Given a router with the docs routes", t, func() {
		router := chi.NewRouter()
		RegisterRoutes(router)

		convey.Convey("When requesting /swagger.json", func() {
			req := httptest.NewRequest(http.MethodGet, "/swagger.json", http.NoBody)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			convey.Convey("Then it should return the OpenAPI document", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/json")

				var doc struct {
					OpenAPI string                    `json:"openapi"`
					Paths   map[string]map[string]any `json:"paths"`
				}
				convey.So(json.Unmarshal(w.Body.Bytes(), &doc), convey.ShouldBeNil)
				convey.So(doc.OpenAPI, convey.ShouldEqual, "3.0.3")
				convey.So(doc.Paths, convey.ShouldContainKey, "/students")
				convey.So(doc.Paths, convey.ShouldContainKey, "/courses/{id}")
				convey.So(doc.Paths, convey.ShouldContainKey, "/courses/{id}/students/{studentId}")
			})
		})

		convey.Convey("When requesting /api-docs", func() {
			req := httptest.NewRequest(http.MethodGet, "/api-docs", http.NoBody)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			convey.Convey("Then it should return the Swagger UI page", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/html; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "swagger-ui")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "/swagger.json")
			})
		})
	})
}

func TestOpenAPIDocumentsEveryOperation(t *testing.T) {
	convey.Convey("Given the embedded OpenAPI document", t, func() {
		var doc struct {
			Paths map[string]map[string]any `json:"paths"`
		}
		convey.So(json.Unmarshal(OpenAPI, &doc), convey.ShouldBeNil)

		convey.Convey("Then every served operation should be described", func() {
			expected := map[string][]string{
				"/students":                          {"get", "post"},
				"/students/{id}":                     {"get", "put", "delete"},
				"/courses":                           {"get", "post"},
				"/courses/{id}":                      {"get", "put", "delete"},
				"/courses/{id}/students/{studentId}": {"post", "delete"},
			}
			for path, methods := range expected {
				for _, method := range methods {
					convey.So(doc.Paths[path], convey.ShouldContainKey, method)
				}
			}
		})
	})
}
