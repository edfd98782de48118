// Package records exposes the generic sheet-CRUD surface: one endpoint,
// four verbs, entity selected by the "sheet" key. The wire contract matches
// the legacy script endpoint the SPA was built against, including the
// body-shaped not-found errors and the callback-wrapped GET responses.
package records

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stocksheet/stocksheet/internal/platform/httpx"
	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// Reserved query keys; every other GET parameter is an equality filter.
const (
	keySheet    = "sheet"
	keyID       = "id"
	keyCallback = "callback"
	keyLimit    = "limit"
	keyOffset   = "offset"
)

type Handler struct {
	logger *slog.Logger
	store  *sheetdb.Store
}

func NewHandler(logger *slog.Logger, store *sheetdb.Store) *Handler {
	return &Handler{logger: logger, store: store}
}

type mutationResponse struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
	ID     string `json:"id,omitempty"`
	Sheet  string `json:"sheet"`
}

// List handles GET: by-id lookup, equality filtering and offset/limit
// slicing. With a callback parameter the result is script-wrapped.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sheet := sheetName(query.Get(keySheet))

	callback := query.Get(keyCallback)
	if callback != "" && !httpx.ValidCallback(callback) {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid callback name")
		return
	}

	respond := func(data any) {
		if callback != "" {
			httpx.Script(w, callback, data)
			return
		}
		httpx.JSON(w, http.StatusOK, data)
	}

	if id := query.Get(keyID); id != "" {
		rec, err := h.store.Get(r.Context(), sheet, id)
		if err != nil {
			if errors.Is(err, sheetdb.ErrNotFound) {
				respond(sheetdb.Record{})
				return
			}
			h.logger.Error("get record failed", "error", err, "sheet", sheet, "id", id)
			httpx.RespondError(w, err)
			return
		}
		respond(rec)
		return
	}

	q := sheetdb.Query{Filters: map[string]string{}}
	for key, values := range query {
		switch key {
		case keySheet, keyID, keyCallback, keyLimit, keyOffset:
			continue
		}
		if len(values) > 0 {
			q.Filters[key] = values[0]
		}
	}
	if l := query.Get(keyLimit); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			q.Limit = parsed
		}
	}
	if o := query.Get(keyOffset); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			q.Offset = parsed
		}
	}

	records, err := h.store.List(r.Context(), sheet, q)
	if err != nil {
		h.logger.Error("list records failed", "error", err, "sheet", sheet)
		httpx.RespondError(w, err)
		return
	}
	respond(records)
}

// Create handles POST: the body is the record plus the sheet selector.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed JSON body")
		return
	}

	sheet := sheetName(sheetdb.Scalar(body[keySheet]))
	delete(body, keySheet)

	stored, err := h.store.Create(r.Context(), sheet, sheetdb.CoerceRecord(body))
	if err != nil {
		if errors.Is(err, sheetdb.ErrDuplicateID) {
			httpx.Problem(w, http.StatusConflict, "Duplicate", err.Error())
			return
		}
		h.logger.Error("create record failed", "error", err, "sheet", sheet)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mutationResponse{Status: "success", ID: stored[sheetdb.FieldID], Sheet: sheet})
}

// Update handles PUT: the body must carry the identifier. An unknown
// identifier yields an error-shaped body, not a failure status.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed JSON body")
		return
	}

	sheet := sheetName(sheetdb.Scalar(body[keySheet]))
	delete(body, keySheet)

	rec := sheetdb.CoerceRecord(body)
	id := rec[sheetdb.FieldID]

	if err := h.store.Update(r.Context(), sheet, rec); err != nil {
		if errors.Is(err, sheetdb.ErrNotFound) {
			httpx.JSON(w, http.StatusOK, mutationResponse{Error: "ID not found", Sheet: sheet})
			return
		}
		h.logger.Error("update record failed", "error", err, "sheet", sheet, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mutationResponse{Status: "updated", ID: id, Sheet: sheet})
}

// Delete handles DELETE: sheet and id arrive as query parameters.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sheet := sheetName(query.Get(keySheet))
	id := query.Get(keyID)

	if err := h.store.Delete(r.Context(), sheet, id); err != nil {
		if errors.Is(err, sheetdb.ErrNotFound) {
			httpx.JSON(w, http.StatusOK, mutationResponse{Error: "ID not found", Sheet: sheet})
			return
		}
		h.logger.Error("delete record failed", "error", err, "sheet", sheet, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mutationResponse{Status: "deleted", ID: id, Sheet: sheet})
}

// InitAll provisions every registered entity's sheet with headers. Intended
// for manual, one-time invocation outside normal traffic.
func (h *Handler) InitAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.InitAll(r.Context()); err != nil {
		h.logger.Error("init schemas failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"status": "initialized", "sheets": sheetdb.Entities()})
}

func sheetName(name string) string {
	if name == "" {
		return sheetdb.DefaultEntity
	}
	return name
}
