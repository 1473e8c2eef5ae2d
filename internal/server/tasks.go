package server

import (
	"net/http"
	"strings"

	"github.com/nkorobkov/one-click-routine/internal/locale"
	"github.com/nkorobkov/one-click-routine/internal/schedule"
	"github.com/nkorobkov/one-click-routine/internal/task"
)

// taskView is a task plus everything the page needs to render it, computed
// once per request against a single "now".
type taskView struct {
	task.Task
	DaysRemaining int    `json:"daysRemaining"`
	DaysOverdue   int    `json:"daysOverdue"`
	DueDate       string `json:"dueDate"`
	DueLabel      string `json:"dueLabel"`
	IntervalLabel string `json:"intervalLabel"`
	Overdue       bool   `json:"overdue"`
}

func (h *handler) taskViews() []taskView {
	now := h.clk.Now()
	pack := locale.Get(h.localeID())
	tasks := h.store.List()
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		remaining := schedule.DaysRemaining(t, now)
		overdue := schedule.DaysOverdue(t, now)
		v := taskView{
			Task:          t,
			DaysRemaining: remaining,
			DaysOverdue:   overdue,
			DueDate:       schedule.DueDate(t, now).Format("2006-01-02"),
			IntervalLabel: pack.FormatEveryNDays(t.IntervalDays),
			Overdue:       remaining <= 0,
		}
		if remaining > 0 {
			v.DueLabel = pack.FormatDuration(remaining)
		} else {
			v.DueLabel = pack.FormatOverdue(overdue)
		}
		out = append(out, v)
	}
	return out
}

func (h *handler) listTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tasks": h.taskViews()})
}

type createTaskRequest struct {
	Name              string `json:"name"`
	IntervalDays      int    `json:"intervalDays"`
	InitialDaysOffset *int   `json:"initialDaysOffset,omitempty"`
}

// createTask is the validation boundary: the store itself accepts input
// as-is, so nothing invalid may pass this point.
func (h *handler) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.IntervalDays <= 0 {
		writeErr(w, http.StatusBadRequest, "intervalDays must be positive")
		return
	}
	if req.InitialDaysOffset != nil && *req.InitialDaysOffset < 0 {
		writeErr(w, http.StatusBadRequest, "initialDaysOffset must not be negative")
		return
	}
	t := h.store.Add(req.Name, req.IntervalDays, req.InitialDaysOffset)
	writeJSON(w, http.StatusCreated, t)
}

type updateTaskRequest struct {
	Name         string `json:"name"`
	IntervalDays int    `json:"intervalDays"`
}

func (h *handler) updateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.IntervalDays <= 0 {
		writeErr(w, http.StatusBadRequest, "name and positive intervalDays are required")
		return
	}
	if !h.store.Update(r.PathValue("id"), req.Name, req.IntervalDays) {
		writeErr(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	// Deleting an absent id is a no-op, not an error.
	h.store.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) completeTask(w http.ResponseWriter, r *http.Request) {
	if !h.store.Complete(r.PathValue("id")) {
		writeErr(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":           true,
		"undoWindowMs": h.cfg.UndoWindowSeconds * 1000,
	})
}

func (h *handler) undoTask(w http.ResponseWriter, r *http.Request) {
	if !h.store.Undo(r.PathValue("id")) {
		writeErr(w, http.StatusConflict, "nothing to undo")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type adjustTaskRequest struct {
	DeltaDays int `json:"deltaDays"`
}

func (h *handler) adjustTask(w http.ResponseWriter, r *http.Request) {
	var req adjustTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.DeltaDays == 0 {
		writeErr(w, http.StatusBadRequest, "deltaDays must not be zero")
		return
	}
	if !h.store.Adjust(r.PathValue("id"), req.DeltaDays) {
		writeErr(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type moveTaskRequest struct {
	Direction string `json:"direction"`
}

func (h *handler) moveTask(w http.ResponseWriter, r *http.Request) {
	var req moveTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	id := r.PathValue("id")
	var moved bool
	switch req.Direction {
	case "up":
		moved = h.store.MoveUp(id)
	case "down":
		moved = h.store.MoveDown(id)
	default:
		writeErr(w, http.StatusBadRequest, "direction must be up or down")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"moved": moved})
}
