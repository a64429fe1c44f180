package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/telehedr/auth-api/internal/logger"
	"github.com/telehedr/auth-api/internal/models"
)

// RecoverMiddleware catches panics from downstream handlers, logs them, and
// answers with an opaque internal error. No panic details reach the client.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Errorw("panic recovered",
					"panic", rec,
					"method", r.Method,
					"uri", r.RequestURI,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Response{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
