package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/moxie99/flight-search-app/internal/pkg/pkgerror"
	"github.com/moxie99/flight-search-app/internal/pkg/pkguid"
)

// HandlerFunc is the endpoint signature modules register. The returned value
// is JSON-encoded as the response body; a returned error is mapped through
// pkgerror to an HTTP status.
type HandlerFunc func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux *mux.Router
	uid pkguid.StringID
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func NewRouter(uid pkguid.StringID) *Router {
	router := &Router{mux: mux.NewRouter(), uid: uid}

	router.mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}

func (rt *Router) GET(path string, handler HandlerFunc) {
	rt.handle(http.MethodGet, path, handler)
}

func (rt *Router) POST(path string, handler HandlerFunc) {
	rt.handle(http.MethodPost, path, handler)
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

// PathParam returns a named path segment ("{id}") from the matched route.
func PathParam(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

func (rt *Router) handle(method, path string, handler HandlerFunc) {
	rt.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		requestID := rt.uid.Generate()
		w.Header().Set("X-Request-Id", requestID)
		w.Header().Set("Content-Type", "application/json")

		payload, err := handler(r.Context(), r)
		if err != nil {
			rt.writeError(w, r, requestID, err)
			return
		}

		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.ErrorContext(r.Context(), "failed to encode response",
				"request_id", requestID, "path", r.URL.Path, "error", err)
		}
	}).Methods(method)
}

func (rt *Router) writeError(w http.ResponseWriter, r *http.Request, requestID string, err error) {
	code, known := pkgerror.CodeOf(err)
	status := pkgerror.HTTPStatus(code)

	message := err.Error()
	if !known {
		// Internal details stay in the log, not the response body.
		slog.ErrorContext(r.Context(), "unhandled endpoint error",
			"request_id", requestID, "path", r.URL.Path, "error", err)
		message = "internal server error"
	}

	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: string(code)})
}
