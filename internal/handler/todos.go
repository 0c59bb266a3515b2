package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/todo-service/internal/extract"
	"github.com/angeloszaimis/todo-service/internal/rejection"
	"github.com/angeloszaimis/todo-service/internal/router"
	"github.com/angeloszaimis/todo-service/internal/store"
)

// TodoHandler serves the CRUD endpoints over the shared store.
type TodoHandler struct {
	logger       *slog.Logger
	store        *store.Store
	maxBodyBytes int64
}

func NewTodoHandler(logger *slog.Logger, s *store.Store, maxBodyBytes int64) *TodoHandler {
	return &TodoHandler{
		logger:       logger,
		store:        s,
		maxBodyBytes: maxBodyBytes,
	}
}

// List renders the todos as a JSON array, windowed by offset and limit.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request, _ router.Params) *rejection.Rejection {
	opts, rej := extract.ParseListOptions(r.URL.Query())
	if rej != nil {
		return rej
	}

	writeJSON(w, http.StatusOK, h.store.List(opts.Offset, opts.Limit))
	return nil
}

// Create inserts a new todo. A duplicate id is a domain outcome rendered
// here, not a dispatch failure.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request, _ router.Params) *rejection.Rejection {
	var todo store.Todo
	if rej := extract.JSONBody(r, h.maxBodyBytes, &todo); rej != nil {
		return rej
	}

	if err := h.store.Create(todo); err != nil {
		if errors.Is(err, store.ErrConflict) {
			h.logger.Debug("Rejected duplicate todo", slog.Uint64("id", todo.ID))
			writeDomainError(w, http.StatusBadRequest, "CONFLICT")
			return nil
		}
		return rejection.Wrap(rejection.Internal, err)
	}

	w.WriteHeader(http.StatusCreated)
	return nil
}

// Update replaces the todo addressed by the id path parameter.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request, p router.Params) *rejection.Rejection {
	var todo store.Todo
	if rej := extract.JSONBody(r, h.maxBodyBytes, &todo); rej != nil {
		return rej
	}

	id := p.Uint("id")
	if err := h.store.Update(id, todo); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeDomainError(w, http.StatusNotFound, "NOT_FOUND")
			return nil
		}
		return rejection.Wrap(rejection.Internal, err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}

// Delete removes the todo addressed by the id path parameter. The admin
// auth predicate has already run by the time this is invoked.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request, p router.Params) *rejection.Rejection {
	id := p.Uint("id")
	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeDomainError(w, http.StatusNotFound, "NOT_FOUND")
			return nil
		}
		return rejection.Wrap(rejection.Internal, err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
