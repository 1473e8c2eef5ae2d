// Package server wires the HTTP API and the embedded single-page UI.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nkorobkov/one-click-routine/internal/clock"
	"github.com/nkorobkov/one-click-routine/internal/config"
	"github.com/nkorobkov/one-click-routine/internal/httpmw"
	"github.com/nkorobkov/one-click-routine/internal/storage"
	"github.com/nkorobkov/one-click-routine/internal/task"
	"github.com/nkorobkov/one-click-routine/static"
)

type Options struct {
	Config        *config.Config
	Store         *task.Store
	KV            storage.KV
	Clock         clock.Clock
	Logger        *log.Logger
	UseDiskStatic bool
	StaticDir     string
}

type handler struct {
	cfg    *config.Config
	store  *task.Store
	kv     storage.KV
	clk    clock.Clock
	logger *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := &handler{
		cfg:    opts.Config,
		store:  opts.Store,
		kv:     opts.KV,
		clk:    opts.Clock,
		logger: opts.Logger,
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(static.EmbeddedFS()))
	if opts.UseDiskStatic {
		dir := opts.StaticDir
		if dir == "" {
			dir = "static"
		}
		staticHandler = http.FileServer(http.Dir(dir))
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticHandler))
	mux.HandleFunc("GET /{$}", h.index(opts.UseDiskStatic, opts.StaticDir))

	mux.HandleFunc("GET /api/tasks", h.listTasks)
	mux.HandleFunc("POST /api/tasks", h.createTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.updateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.deleteTask)
	mux.HandleFunc("POST /api/tasks/{id}/complete", h.completeTask)
	mux.HandleFunc("POST /api/tasks/{id}/undo", h.undoTask)
	mux.HandleFunc("POST /api/tasks/{id}/adjust", h.adjustTask)
	mux.HandleFunc("POST /api/tasks/{id}/move", h.moveTask)

	mux.HandleFunc("GET /api/export", h.exportLink)
	mux.HandleFunc("POST /api/import", h.importTasks)
	mux.HandleFunc("GET /api/settings", h.getSettings)
	mux.HandleFunc("PUT /api/settings", h.putSettings)
	mux.HandleFunc("GET /api/now", h.now)
	mux.HandleFunc("GET /api/events", h.events)

	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("GET /readyz", h.readyz)

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func (h *handler) index(useDisk bool, staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if useDisk {
			if staticDir == "" {
				staticDir = "static"
			}
			http.ServeFile(w, r, staticDir+"/index.html")
			return
		}
		b, err := static.IndexHTML()
		if err != nil {
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(b)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}
