package httpapi

import (
	"net/http"

	"github.com/lamberpool/matchday/internal/platform/logging"
)

// RouterConfig carries the cross-cutting options the router needs besides
// the handler itself.
type RouterConfig struct {
	AdminCredentials   AdminCredentials
	CORSAllowedOrigins []string
}

// NewRouter assembles the HTTP surface with the full middleware chain:
// tracing wraps logging wraps CORS wraps panic recovery wraps the mux.
func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, handler, cfg.AdminCredentials)

	var chained http.Handler = mux
	chained = recoverPanic(logger, chained)
	chained = CORS(cfg.CORSAllowedOrigins, chained)
	chained = RequestLogging(logger, chained)
	chained = RequestTracing(chained)
	return chained
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.ErrorContext(r.Context(), "panic while serving request",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", recovered,
				)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
