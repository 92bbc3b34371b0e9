// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/rostermix/rostermix/internal/adapters/export"
)

// Maximum accepted import payload, generous for rosters of a few hundred.
const maxImportBytes = 1 << 20

// TransferDependencies defines the interface for export/import and sharing.
type TransferDependencies interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) bool
	ShareLink(ctx context.Context) (string, error)
	DecodeShareLink(ctx context.Context, encoded string) (export.SharePayload, error)
}

// TransferHandler handles export/import and share-link requests.
type TransferHandler struct {
	deps TransferDependencies
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(deps TransferDependencies) *TransferHandler {
	return &TransferHandler{deps: deps}
}

// HandleExport handles GET /export requests.
func (h *TransferHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := h.deps.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="teams-config.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleImport handles POST /import requests. The response mirrors the
// boolean contract of the import path: accepted or rejected, never a throw.
func (h *TransferHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.import"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if ok := h.deps.Import(r.Context(), data); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"imported": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"imported": true})
}

// HandleShare handles GET /share requests, returning the encoded fragment.
func (h *TransferHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	const op = "api.share"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	fragment, err := h.deps.ShareLink(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"fragment": fragment})
}

// HandleShareDecode handles GET /share/decode?data= requests.
func (h *TransferHandler) HandleShareDecode(w http.ResponseWriter, r *http.Request) {
	const op = "api.share_decode"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	encoded := r.URL.Query().Get("data")
	if encoded == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	payload, err := h.deps.DecodeShareLink(r.Context(), encoded)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
