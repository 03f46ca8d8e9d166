// Package http ties the action lifecycle to an HTTP server: middleware
// that wraps every request in its own task, so handler code can start
// nested actions through the scope found in the request context.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/causeway/pkg/action"
	"github.com/aretw0/causeway/pkg/domain"
	"github.com/aretw0/causeway/pkg/ports"
)

// RequestTaskType is the action type of the per-request task.
const RequestTaskType = "http:request"

// TaskMiddleware returns chi middleware starting one task per request.
// The request's scope travels in the context; handlers recover it with
// action.ScopeFrom and nest their own actions under the request task.
//
// The task finishes when the handler returns: successfully with the
// response status and body size as success fields, or as failed when a
// panic unwinds through it (the panic is re-raised for an outer
// recoverer to deal with).
func TaskMiddleware(logger ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := action.NewScope()

			task, err := action.StartTask(logger, RequestTaskType, action.WithFields(domain.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			}))
			if err != nil {
				// The logging path must not take the request down with it.
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := action.WithScope(r.Context(), scope)

			var handlerErr error
			exit := task.Enter(scope)
			defer exit(&handlerErr)

			next.ServeHTTP(ww, r.WithContext(ctx))

			task.AddSuccessFields(domain.Fields{
				"status":         ww.Status(),
				"response_bytes": ww.BytesWritten(),
			})
		})
	}
}
