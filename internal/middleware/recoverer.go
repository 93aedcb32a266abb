package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"academic-service/internal/httputil"
)

// Recoverer turns a handler panic into 500 {"error":"Internal Server Error"}
// and logs the panic value with its stack.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "unhandled panic",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				httputil.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
