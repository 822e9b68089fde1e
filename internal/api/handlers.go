package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"flakytodo/internal/store"
)

// ---------------------------------------------------------------------------
// GET /items
// ---------------------------------------------------------------------------

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.AllItems())
}

// ---------------------------------------------------------------------------
// POST /items
// ---------------------------------------------------------------------------

// createRequest uses pointers so a missing key is distinguishable from an
// empty string; both fields must be present.
type createRequest struct {
	Summary     *string `json:"summary"`
	Description *string `json:"description"`
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Summary == nil {
		writeError(w, http.StatusBadRequest, "summary is required")
		return
	}
	if req.Description == nil {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	item := s.store.AddItem(*req.Summary, *req.Description)
	writeJSON(w, http.StatusCreated, item)
}

// ---------------------------------------------------------------------------
// GET /item/{id}
// ---------------------------------------------------------------------------

func (s *Server) handleDescribeItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := s.store.FindItem(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// ---------------------------------------------------------------------------
// DELETE /item/{id}
// ---------------------------------------------------------------------------

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	err := s.store.DeleteItem(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

// itemID parses the {id} path value, writing a 400 response when it is not
// a valid integer.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}
