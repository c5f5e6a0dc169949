// Package server implements the dashboard: one page, two actions, and the
// session state they read and write.
package server

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os/exec"
	"strings"
	"sync"

	"github.com/acalderon/encuestas/internal/fault"
	"github.com/acalderon/encuestas/internal/inference"
	"github.com/acalderon/encuestas/internal/sheets"
)

const (
	warningLoadDataFirst = "Por favor, cargue los datos primero."
	warningAskSomething  = "Por favor, formule una pregunta."
)

// Handler serves the dashboard page and sequences the load and analyze
// actions. All session state lives here, guarded by one mutex; every action
// is synchronous, so a slow fetch or AI call blocks the page, matching the
// single-operator deployment model.
type Handler struct {
	analyzer     *inference.Analyzer
	fetchCommand []string
	snapshotFile string
	tmpl         *template.Template

	mu    sync.Mutex
	state sessionState
}

// sessionState is everything the page renders from. Rendering is idempotent
// given the same state.
type sessionState struct {
	sheetData   [][]string
	loadMessage string
	loadError   string
	question    string
	warning     string
	answer      string
}

func NewHandler(
	analyzer *inference.Analyzer,
	fetchCommand []string,
	snapshotFile string,
	tmpl *template.Template,
) *Handler {
	return &Handler{
		analyzer:     analyzer,
		fetchCommand: fetchCommand,
		snapshotFile: snapshotFile,
		tmpl:         tmpl,
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /load", h.handleLoad)
	mux.HandleFunc("POST /analyze", h.handleAnalyze)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	view := h.buildView()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, view); err != nil {
		slog.Default().Error("failed to render dashboard", slog.Any("error", err))
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
	}
}

// handleLoad runs the fetch subprocess and, on success, replaces the loaded
// data and clears the previous answer. On failure the previous data stays
// and only the error message changes.
func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.loadMessage = ""
	h.state.loadError = ""
	h.state.warning = ""

	command := exec.CommandContext(r.Context(), h.fetchCommand[0], h.fetchCommand[1:]...)
	output, err := command.CombinedOutput()
	switch {
	case err != nil:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			h.state.loadError = fmt.Sprintf("Sheet data script failed (Code %d):\n%s",
				exitErr.ExitCode(), strings.TrimSpace(string(output)))
		} else {
			h.state.loadError = fmt.Sprintf("failed to run fetch command %q: %v", h.fetchCommand, err)
		}
		slog.Default().Error("fetch subprocess failed",
			slog.Any("command", h.fetchCommand),
			slog.Any("error", err),
		)
	default:
		rows, readErr := sheets.ReadSnapshot(h.snapshotFile)
		if readErr != nil {
			if fault.KindOf(readErr) == fault.KindMalformedData {
				h.state.loadError = fmt.Sprintf("Error decoding JSON: %v", readErr)
			} else {
				h.state.loadError = fmt.Sprintf("Error reading data file: %v", readErr)
			}
		} else {
			h.state.sheetData = rows
			h.state.answer = ""
			h.state.loadMessage = fmt.Sprintf("Sheet data script success: %s", strings.TrimSpace(string(output)))
			slog.Default().Info("sheet data reloaded", slog.Int("rows", len(rows)))
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAnalyze validates the question against the loaded data and, when
// valid, performs one blocking AI call and replaces the last answer.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	question := r.FormValue("question")

	h.mu.Lock()
	h.state.question = question
	h.state.warning = ""
	h.state.loadMessage = ""

	switch {
	case len(h.state.sheetData) == 0:
		h.state.warning = warningLoadDataFirst
		h.mu.Unlock()
	case strings.TrimSpace(question) == "":
		h.state.warning = warningAskSomething
		h.mu.Unlock()
	default:
		sheetData := h.state.sheetData
		h.mu.Unlock()

		// The AI call happens outside the lock so a concurrent page render
		// stays possible; the action itself is still synchronous.
		answer := h.analyzer.GetAnswer(r.Context(), question, sheetData)

		h.mu.Lock()
		h.state.answer = answer
		h.mu.Unlock()
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
