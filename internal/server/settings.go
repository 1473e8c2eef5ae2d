package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nkorobkov/one-click-routine/internal/locale"
)

const (
	localeKey = "locale"
	themeKey  = "theme"
)

var knownThemes = []string{"light", "dark"}

func (h *handler) localeID() locale.ID {
	if v := h.settingValue(localeKey); v != "" {
		return locale.ID(v)
	}
	return locale.ID(h.cfg.DefaultLocale)
}

func (h *handler) theme() string {
	if v := h.settingValue(themeKey); v != "" {
		return v
	}
	return h.cfg.DefaultTheme
}

// settingValue reads one persisted setting. Storage trouble degrades to the
// configured default; a broken setting never blocks a request.
func (h *handler) settingValue(key string) string {
	if h.kv == nil {
		return ""
	}
	b, ok, err := h.kv.Get(key)
	if err != nil {
		h.logger.Printf("settings: read %q failed: %v", key, err)
		return ""
	}
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return ""
	}
	return v
}

func (h *handler) saveSetting(key, value string) {
	if h.kv == nil {
		return
	}
	b, _ := json.Marshal(value)
	if err := h.kv.Set(key, b); err != nil {
		h.logger.Printf("settings: save %q failed, keeping in-memory value: %v", key, err)
	}
}

func (h *handler) getSettings(w http.ResponseWriter, r *http.Request) {
	pack := locale.Get(h.localeID())
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":  pack.ID,
		"theme":   h.theme(),
		"locales": locale.IDs(),
		"themes":  knownThemes,
		"strings": pack.Strings,
	})
}

type settingsRequest struct {
	Locale string `json:"locale"`
	Theme  string `json:"theme"`
}

func (h *handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Locale != "" {
		if !locale.Known(locale.ID(req.Locale)) {
			writeErr(w, http.StatusBadRequest, "unknown locale")
			return
		}
		h.saveSetting(localeKey, req.Locale)
	}
	if req.Theme != "" {
		if !validTheme(req.Theme) {
			writeErr(w, http.StatusBadRequest, "unknown theme")
			return
		}
		h.saveSetting(themeKey, req.Theme)
	}
	h.getSettings(w, r)
}

func validTheme(v string) bool {
	for _, t := range knownThemes {
		if t == v {
			return true
		}
	}
	return false
}

// now feeds the page's clock face and date line, formatted by the active
// locale pack. Polled once a minute; display only.
func (h *handler) now(w http.ResponseWriter, r *http.Request) {
	now := h.clk.Now().In(time.Local)
	pack := locale.Get(h.localeID())
	writeJSON(w, http.StatusOK, map[string]any{
		"clock": pack.FormatClock(now.Hour(), now.Minute()),
		"date":  pack.FormatDate(int(now.Weekday()), now.Day(), int(now.Month())-1),
		"today": now.Format("2006-01-02"),
	})
}

func (h *handler) exportLink(w http.ResponseWriter, r *http.Request) {
	payload := h.store.Export()
	link := ""
	if payload != "" {
		link = h.cfg.BaseURL + "?import=" + payload
	}
	writeJSON(w, http.StatusOK, map[string]any{"link": link, "data": payload})
}

type importRequest struct {
	Data string `json:"data"`
}

func (h *handler) importTasks(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	added, err := h.store.Import(req.Data)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "import failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"added": added, "changed": added > 0})
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "one-click-routine",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) readyz(w http.ResponseWriter, r *http.Request) {
	if h.kv != nil {
		if _, _, err := h.kv.Get(localeKey); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "storage unavailable",
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "one-click-routine",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
