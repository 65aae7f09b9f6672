package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	kernelhandler "saintkernel/internal/kernel/handler"
	"saintkernel/pkg/platform/middleware/metadata"
	"saintkernel/pkg/platform/middleware/requestid"
	"saintkernel/pkg/platform/middleware/requesttime"
)

// NewRouter wires all public endpoints. The kernel handler owns the
// /kernel/* surface; everything here is transport plumbing.
func NewRouter(kh *kernelhandler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	kh.Register(r)

	return r
}
