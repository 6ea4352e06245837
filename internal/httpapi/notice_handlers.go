package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"noticegen/internal/logger"
	"noticegen/internal/notice"
	"noticegen/internal/render"
)

const (
	pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	downloadName    = "notice_a4.pptx"
	defaultPeriod   = notice.DatePlaceholder + " ~ " + notice.DatePlaceholder
)

type NoticeHandler struct {
	Renderer     *render.Renderer
	Metrics      *Metrics
	MaxBodyBytes int64
}

// generateRequest keeps every field loosely typed; absent keys and
// non-string values are handled the way the web form expects.
type generateRequest map[string]any

func (g generateRequest) str(key, def string) string {
	v, ok := g[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (g generateRequest) data() notice.Data {
	period, ok := g["period"]
	if !ok {
		period = defaultPeriod
	}
	var body []string
	if v, ok := g["body"]; ok && v != nil {
		body = notice.NormalizeBody(v)
	}
	return notice.Build(
		g.str("notice_no", ""),
		g.str("apt_name", ""),
		period,
		g.str("title", notice.TitlePlaceholder),
		body,
	)
}

// Generate renders the posted fields and returns the document as a download.
func (h NoticeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r, h.MaxBodyBytes)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			WriteError(w, r, http.StatusRequestEntityTooLarge, "too_large", "request body too large")
			return
		}
		WriteError(w, r, http.StatusBadRequest, "bad_request", "could not read request body")
		return
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var req generateRequest
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		writeText(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	start := time.Now()
	b, err := h.Renderer.RenderBytes(req.data())
	h.Metrics.observeRender(time.Since(start).Seconds(), err)
	if err != nil {
		logger.FromContext(r.Context()).Error("render failed", "err", err)
		WriteError(w, r, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", pptxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	return io.ReadAll(body)
}
