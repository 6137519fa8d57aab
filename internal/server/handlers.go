package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/ghostconf/internal/discovery"
	"github.com/bnema/ghostconf/internal/document"
	"github.com/bnema/ghostconf/internal/keybind"
	"github.com/bnema/ghostconf/internal/merge"
	"github.com/bnema/ghostconf/internal/validate"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Registry.ListByCategory())
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"path":    s.session.Path(),
		"unsaved": s.session.UnsavedCount(),
		"stale":   s.session.Stale(),
	})
}

type entryView struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Line    int    `json:"line"`
	Comment string `json:"comment,omitempty"`
}

func (s *Server) handleListConfig(w http.ResponseWriter, _ *http.Request) {
	doc := s.session.Working()
	var out []entryView
	for i, ln := range doc.Lines {
		if ln.Kind != document.KindEntry {
			continue
		}
		out = append(out, entryView{
			Key:     ln.Key,
			Value:   ln.Value,
			Line:    i,
			Comment: doc.CommentFor(i),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetValue(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	doc := s.session.Working()

	value, set := doc.Get(key)
	resp := map[string]any{"key": key, "set": set, "value": value}
	if opt, ok := s.catalog.Registry.Lookup(key); ok {
		resp["default"] = opt.Default
		resp["type"] = opt.Type
		if !set {
			resp["value"] = opt.Default
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type setValueRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleSetValue(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req setValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	value := strings.TrimSpace(req.Value)

	opt, known := s.catalog.Registry.Lookup(key)

	s.session.Mutate(key, func(doc *document.Document) {
		switch {
		case known && opt.Repeatable:
			doc.Add(key, value)
		case value == "" || (known && value == opt.Default):
			// Setting the default (or clearing) removes the override.
			doc.Remove(key)
		default:
			doc.Set(key, value)
		}
	})

	s.writeJSON(w, http.StatusOK, map[string]any{
		"key":     key,
		"unsaved": s.session.UnsavedCount(),
	})
}

func (s *Server) handleDeleteValue(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	s.session.Mutate(key, func(doc *document.Document) {
		doc.Remove(key)
	})
	s.writeJSON(w, http.StatusOK, map[string]any{
		"key":     key,
		"unsaved": s.session.UnsavedCount(),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc := s.session.Working()
	issues := validate.Check(doc, s.catalog.Registry)

	resp := map[string]any{
		"issues":     issues,
		"has_errors": validate.HasErrors(issues),
	}
	if verdict, err := discovery.ValidateConfig(r.Context(), s.runner); err == nil {
		resp["ghostty"] = strings.TrimSpace(verdict)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// save reconciles the working document with the on-disk state and writes.
// Returns conflicts instead of writing when the file diverged under an
// edited key.
func (s *Server) save(w http.ResponseWriter) bool {
	working := s.session.Working()

	issues := validate.Check(working, s.catalog.Registry)
	if validate.HasErrors(issues) {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation errors must be fixed before saving",
			"issues": issues,
		})
		return false
	}

	live, err := s.readLive()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return false
	}

	merged, conflicts := merge.Reconcile(s.session.Baseline(), working, live, s.catalog.Registry)
	if len(conflicts) > 0 {
		s.writeJSON(w, http.StatusConflict, map[string]any{
			"error":     "config file changed on disk; resolve conflicts and retry",
			"conflicts": conflicts,
		})
		return false
	}

	if err := document.WriteFile(s.session.Path(), merged); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return false
	}

	// Re-read so the session baseline matches exactly what is on disk.
	synced, err := s.readLive()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return false
	}
	s.session.Sync(synced)
	return true
}

func (s *Server) handleSave(w http.ResponseWriter, _ *http.Request) {
	if !s.save(w) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"saved": true})
}

func (s *Server) handleApply(w http.ResponseWriter, _ *http.Request) {
	if !s.save(w) {
		return
	}

	resp := map[string]any{"saved": true, "reloaded": true}
	if err := discovery.RequestReload(); err != nil {
		s.log.Warn().Err(err).Msg("failed to trigger ghostty reload")
		resp["reloaded"] = false
		resp["reload_hint"] = "reload Ghostty manually (cmd+shift+, on macOS)"
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListThemes(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Themes)
}

type applyThemeRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleApplyTheme(w http.ResponseWriter, r *http.Request) {
	var req applyThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		s.writeError(w, http.StatusBadRequest, "theme name required")
		return
	}
	s.session.Mutate("theme", func(doc *document.Document) {
		doc.Set("theme", strings.TrimSpace(req.Name))
	})
	s.writeJSON(w, http.StatusOK, map[string]any{
		"theme":   req.Name,
		"unsaved": s.session.UnsavedCount(),
	})
}

func (s *Server) handleListFonts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Fonts)
}

func (s *Server) handleListKeybinds(w http.ResponseWriter, _ *http.Request) {
	doc := s.session.Working()

	var bindings []keybind.Binding
	var invalid []string
	for _, value := range doc.GetAll("keybind") {
		b, err := keybind.Parse(value)
		if err != nil {
			invalid = append(invalid, value)
			continue
		}
		bindings = append(bindings, b)
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"custom":    bindings,
		"invalid":   invalid,
		"conflicts": keybind.DetectConflicts(bindings),
		"defaults":  s.catalog.DefaultKeybinds,
		"actions":   s.catalog.Actions,
	})
}

func (s *Server) knownAction(name string) bool {
	for _, a := range s.catalog.Actions {
		if a == name {
			return true
		}
	}
	return false
}

type keybindRequest struct {
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
}

func (s *Server) handleAddKeybind(w http.ResponseWriter, r *http.Request) {
	var req keybindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	b, err := keybind.Parse(strings.TrimSpace(req.Trigger) + "=" + strings.TrimSpace(req.Action))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.session.Mutate("keybind", func(doc *document.Document) {
		doc.Add("keybind", b.String())
	})

	resp := map[string]any{
		"keybind": b,
		"unsaved": s.session.UnsavedCount(),
	}
	// Unknown actions are accepted (the vocabulary may be incomplete on
	// older installs) but flagged for the UI.
	if len(s.catalog.Actions) > 0 && !s.knownAction(b.ActionName()) {
		resp["unknown_action"] = true
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteKeybind(w http.ResponseWriter, r *http.Request) {
	var req keybindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	target, err := keybind.Parse(strings.TrimSpace(req.Trigger) + "=" + strings.TrimSpace(req.Action))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.session.Mutate("keybind", func(doc *document.Document) {
		// Match on normalized form so modifier order never blocks deletion.
		for _, value := range doc.GetAll("keybind") {
			b, err := keybind.Parse(value)
			if err == nil && b.Trigger == target.Trigger && b.Action == target.Action {
				doc.RemoveValue("keybind", value)
			}
		}
	})
	s.writeJSON(w, http.StatusOK, map[string]any{
		"deleted": target,
		"unsaved": s.session.UnsavedCount(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(document.Serialize(s.session.Working()))
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	s.session.Replace(document.Parse(body))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"imported": true,
		"unsaved":  s.session.UnsavedCount(),
	})
}
