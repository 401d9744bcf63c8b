// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pdiddy/mdesk/internal/httputil"
	"github.com/pdiddy/mdesk/internal/orchestrator"
	"github.com/pdiddy/mdesk/internal/selector"
	"github.com/pdiddy/mdesk/pkg/types"
)

// stateResponse is the full UI snapshot served by GET /api/state.
type stateResponse struct {
	File     *types.SelectedFile    `json:"file"`
	Settings types.DocumentSettings `json:"settings"`
	State    types.ConversionState  `json:"state"`
	Copied   bool                   `json:"copied"`
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, "UI page missing from build")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	resp := stateResponse{
		File:     a.selector.Current(),
		Settings: a.settings,
	}
	a.mu.Unlock()

	resp.State = a.orch.State()
	resp.Copied = a.presenter.CopiedRecently()
	httputil.RespondJSON(w, http.StatusOK, resp)
}

func (a *App) handleSelectFile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
		Via  string `json:"via"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	a.mu.Lock()
	file, err := a.selector.Select(req.Path)
	a.mu.Unlock()

	switch {
	case errors.Is(err, selector.ErrNotMarkdown):
		a.logger.Info("selection rejected", "path", req.Path, "via", req.Via)
		httputil.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	default:
		a.logger.Info("file selected", "path", file.Path, "via", req.Via)
		httputil.RespondJSON(w, http.StatusOK, file)
	}
}

func (a *App) handleClearFile(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.selector.Clear()
	a.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	settings := a.settings
	a.mu.Unlock()
	httputil.RespondJSON(w, http.StatusOK, settings)
}

func (a *App) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	a.mu.Lock()
	updated, err := a.settings.With(req.Field, req.Value)
	if err == nil {
		a.settings = updated
	}
	a.mu.Unlock()

	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	httputil.RespondJSON(w, http.StatusOK, updated)
}

func (a *App) handleConvert(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	file := a.selector.Current()
	settings := a.settings
	a.mu.Unlock()

	state, err := a.orch.Convert(r.Context(), file, settings)
	switch {
	case errors.Is(err, orchestrator.ErrNoSelection):
		httputil.RespondError(w, http.StatusConflict, "no file selected")
	case errors.Is(err, orchestrator.ErrConversionInFlight):
		httputil.RespondError(w, http.StatusConflict, "a conversion is already in progress")
	case err != nil:
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
	case state.Phase == types.PhaseFailed:
		a.logger.Warn("conversion failed", "input", file.Path, "message", state.Message)
		httputil.RespondError(w, http.StatusBadGateway, state.Message)
	default:
		a.logger.Info("conversion succeeded", "input", file.Path, "output", state.OutputPath)
		httputil.RespondJSON(w, http.StatusOK, state)
	}
}

// outputPath returns the last successful output, or "" when there is none.
func (a *App) outputPath() string {
	state := a.orch.State()
	if state.Phase != types.PhaseSucceeded {
		return ""
	}
	return state.OutputPath
}

func (a *App) handleCopyPath(w http.ResponseWriter, r *http.Request) {
	path := a.outputPath()
	if path == "" {
		httputil.RespondError(w, http.StatusConflict, "no converted document available")
		return
	}
	if err := a.presenter.CopyPath(path); err != nil {
		a.logger.Warn("copy path failed", "error", err)
		httputil.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]any{"copied": true, "path": path})
}

func (a *App) handleOpenFile(w http.ResponseWriter, r *http.Request) {
	a.hostAction(w, a.presenter.OpenFile)
}

func (a *App) handleOpenFolder(w http.ResponseWriter, r *http.Request) {
	a.hostAction(w, a.presenter.RevealInFolder)
}

// hostAction runs a host delegation against the current output; failures are
// reported, not dropped.
func (a *App) hostAction(w http.ResponseWriter, action func(string) error) {
	path := a.outputPath()
	if path == "" {
		httputil.RespondError(w, http.StatusConflict, "no converted document available")
		return
	}
	if err := action(path); err != nil {
		a.logger.Warn("host action failed", "error", err)
		httputil.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	if a.history == nil {
		httputil.RespondJSON(w, http.StatusOK, []types.ConversionRecord{})
		return
	}

	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	recs, err := a.history.Recent(n)
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if recs == nil {
		recs = []types.ConversionRecord{}
	}
	httputil.RespondJSON(w, http.StatusOK, recs)
}
