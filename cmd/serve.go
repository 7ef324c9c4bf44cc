package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "github.com/nourmourtada10/sudoku-go/internal/adapters/http"
	"github.com/nourmourtada10/sudoku-go/internal/generator"
	"github.com/nourmourtada10/sudoku-go/internal/hint"
	"github.com/nourmourtada10/sudoku-go/internal/infrastructure/storage"
	"github.com/nourmourtada10/sudoku-go/internal/ports"
	"github.com/nourmourtada10/sudoku-go/internal/usecase"
	"github.com/nourmourtada10/sudoku-go/internal/validator"
)

var (
	serveAddr    string
	persistPath  string
	storageName  string
	serveTimeout time.Duration
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&persistPath, "persist-path", "./data", "save directory for the fs store")
	serveCmd.Flags().StringVar(&storageName, "storage", "fs", "saved-game store: fs|pocketbase")
	serveCmd.Flags().DurationVar(&serveTimeout, "gen-timeout", 2*time.Second, "uniqueness-check budget per generated puzzle")
	rootCmd.AddCommand(serveCmd)
}

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

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func newStorage() (ports.Storage, error) {
	switch strings.ToLower(strings.TrimSpace(storageName)) {
	case "pocketbase", "pb":
		return storage.NewPocketBaseFromEnv()
	case "fs":
		return storage.NewFS(persistPath), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", storageName)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := newStorage()
	if err != nil {
		return err
	}

	s := newSolver()
	g := generator.New(s, &generator.Options{Timeout: serveTimeout})
	uc := usecase.NewService(s, g, validator.New(), hint.NewReveal(nil), st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           requestLogger(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithFields(logrus.Fields{
		"addr":    serveAddr,
		"storage": storageName,
		"solver":  solverName,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
