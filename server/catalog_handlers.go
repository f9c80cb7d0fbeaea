package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathID parses the {id} path variable. A non-numeric id parses to 0, which
// never matches a stored record, so malformed ids fall through to the same
// not-found path as unknown ones.
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// GetProductsHandler returns the full product catalog.
func (h *APIHandler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogRepo.ListProducts())
}

// GetProductHandler returns a single product by id.
func (h *APIHandler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	product := h.catalogRepo.GetProduct(pathID(r))
	if product == nil {
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetTracksHandler returns the full track catalog.
func (h *APIHandler) GetTracksHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogRepo.ListTracks())
}

// GetTrackHandler returns a single track by id.
func (h *APIHandler) GetTrackHandler(w http.ResponseWriter, r *http.Request) {
	track := h.catalogRepo.GetTrack(pathID(r))
	if track == nil {
		writeMessage(w, http.StatusNotFound, "Track not found")
		return
	}
	writeJSON(w, http.StatusOK, track)
}

// GetRelatedProductsHandler returns the products tied to a track. An unknown
// track id yields an empty list, not an error.
func (h *APIHandler) GetRelatedProductsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogRepo.ListRelatedProducts(pathID(r)))
}
