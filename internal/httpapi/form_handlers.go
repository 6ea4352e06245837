package httpapi

import (
	_ "embed"
	"net/http"
	"os"

	"noticegen/internal/logger"
)

//go:embed web/notice_form.html
var noticeForm []byte

// FormHandler serves the web form. Path, when set, overrides the built-in
// page and is read on every request.
type FormHandler struct {
	Path string
}

func (h FormHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		notFound(w)
		return
	}
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	page := noticeForm
	if h.Path != "" {
		b, err := os.ReadFile(h.Path)
		if err != nil {
			logger.FromContext(r.Context()).Warn("form file unreadable", "path", h.Path, "err", err)
			writeText(w, http.StatusNotFound, "notice_form.html not found")
			return
		}
		page = b
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
