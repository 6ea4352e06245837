package httpapi

import (
	"net/http"

	"noticegen/internal/logger"
)

// NewMux registers the routes without middleware.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	fh := FormHandler{Path: d.Config.Server.FormFile}
	mux.HandleFunc("/", fh.Index)

	nh := NoticeHandler{
		Renderer:     d.Renderer,
		Metrics:      d.Metrics,
		MaxBodyBytes: d.Config.Server.MaxBodyBytes,
	}
	mux.HandleFunc("/generate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: nh.Generate,
	}))

	dh := DraftHandler{
		Drafter:      d.Drafter,
		Metrics:      d.Metrics,
		MaxBodyBytes: d.Config.Server.MaxBodyBytes,
	}
	mux.HandleFunc("/draft", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Draft,
	}))

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Handler())
	}
	return mux
}

// NewHandler is NewMux wrapped in the standard middleware stack.
func NewHandler(d Deps) http.Handler {
	log := d.Logger
	if log == nil {
		log = logger.Nop()
	}
	return Chain(NewMux(d),
		RequestID(log),
		AccessLog,
		Recover,
		Cors,
	)
}
