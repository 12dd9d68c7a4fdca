package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"stockpile/internal/model"
	"stockpile/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	msgInternalError  = "Internal server error"
	msgNotFound       = "Product not found"
	msgInvalidID      = "Invalid product ID"
	msgProductDeleted = "Product deleted successfully"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// ListInStock handles GET /products/instock requests.
func (h *ProductHandler) ListInStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListInStock(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidID, h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /products requests. All three product fields are
// required; validation runs before any store access.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if msg := decodeBody(r, &input); msg != "" {
		writeError(w, http.StatusBadRequest, msg, h.logger)
		return
	}

	var missing []string
	if input.Name == nil {
		missing = append(missing, "name")
	}
	if input.Price == nil {
		missing = append(missing, "price")
	}
	if input.InStock == nil {
		missing = append(missing, "inStock")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "), h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /products/{id} requests. The body may supply any
// subset of the product fields; only supplied fields are changed.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidID, h.logger)
		return
	}

	var patch model.ProductPatch
	if msg := decodeBody(r, &patch); msg != "" {
		writeError(w, http.StatusBadRequest, msg, h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidID, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msgProductDeleted})
}
