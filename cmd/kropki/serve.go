package main

import (
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/kropki/internal/adapters/http"
	"svw.info/kropki/internal/generator"
	"svw.info/kropki/internal/hint"
	"svw.info/kropki/internal/infrastructure/storage"
	"svw.info/kropki/internal/usecase"
	"svw.info/kropki/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func newServeCmd() *cobra.Command {
	var (
		addr       string
		dataDir    string
		backend    string
		propagator string
		heuristics bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildSolver(backend, propagator, heuristics)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dataDir, 0o755); err != nil {
				return err
			}

			// Wire providers → use cases → HTTP adapter
			g := generator.NewUniqueGenerator(s)
			v := validator.New()
			st := storage.NewFS(dataDir)
			hin := hint.NewSingles()
			uc := usecase.NewService(s, g, v, hin, st)
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.WithFields(log.Fields{
				"addr":   addr,
				"data":   dataDir,
				"solver": backend,
			}).Info("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data-dir", "./data", "puzzle save directory")
	cmd.Flags().StringVar(&backend, "solver", "csp", "solving backend: csp|sat")
	cmd.Flags().StringVar(&propagator, "propagator", "gac", "csp propagator: fc|gac")
	cmd.Flags().BoolVar(&heuristics, "heuristics", true, "use MRV+LCV ordering")
	return cmd
}
