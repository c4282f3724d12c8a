// internal/adapters/in/http/handlers/inventory_handler.go
package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

const maxImageUpload = 10 << 20

// InventoryHandler is the manager's own stock:
//
//	GET    /manager/inventory
//	POST   /manager/inventory
//	PUT    /manager/inventory/{id}
//	DELETE /manager/inventory/{id}
//	POST   /manager/inventory/{id}/images   (multipart, field "image")
type InventoryHandler struct {
	UC *usecase.InventoryUsecase
}

func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{UC: uc}
}

func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	log.Printf("[inventory_handler] IN %s %s", r.Method, path)

	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	segs := pathSegments(path, "/manager/inventory")

	switch {
	case len(segs) == 0:
		switch r.Method {
		case http.MethodGet:
			h.list(w, r, s)
		case http.MethodPost:
			h.create(w, r, s)
		default:
			methodNotAllowed(w)
		}

	case len(segs) == 1:
		switch r.Method {
		case http.MethodPut:
			h.update(w, r, s, segs[0])
		case http.MethodDelete:
			h.delete(w, r, s, segs[0])
		default:
			methodNotAllowed(w)
		}

	case len(segs) == 2 && segs[1] == "images":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h.uploadImage(w, r, s, segs[0])

	default:
		notFound(w)
	}
}

func (h *InventoryHandler) list(w http.ResponseWriter, r *http.Request, s usecase.Session) {
	items, err := h.UC.ListOwn(r.Context(), s)
	if err != nil {
		writeDomainError(w, "inventory_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *InventoryHandler) create(w http.ResponseWriter, r *http.Request, s usecase.Session) {
	var in usecase.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	it, err := h.UC.Create(r.Context(), s, in)
	if err != nil {
		writeDomainError(w, "inventory_handler", err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *InventoryHandler) update(w http.ResponseWriter, r *http.Request, s usecase.Session, id string) {
	var in usecase.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	it, err := h.UC.Update(r.Context(), s, id, in)
	if err != nil {
		writeDomainError(w, "inventory_handler", err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *InventoryHandler) delete(w http.ResponseWriter, r *http.Request, s usecase.Session, id string) {
	if err := h.UC.Delete(r.Context(), s, id); err != nil {
		writeDomainError(w, "inventory_handler", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) uploadImage(w http.ResponseWriter, r *http.Request, s usecase.Session, id string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload)
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	// Sniff instead of trusting the part header.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		writeError(w, http.StatusBadRequest, "unreadable image")
		return
	}
	head = head[:n]
	contentType := http.DetectContentType(head)

	it, err := h.UC.UploadImage(r.Context(), s, id, contentType, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		writeDomainError(w, "inventory_handler", err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}
