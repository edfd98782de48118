package products

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stocksheet/stocksheet/internal/platform/httpx"
	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// ThresholdSource supplies the shop-wide low-stock threshold used when a
// product carries none of its own.
type ThresholdSource interface {
	GlobalLowStockThreshold(ctx context.Context) int
}

type Handler struct {
	logger     *slog.Logger
	service    *Service
	thresholds ThresholdSource
	validator  *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, thresholds ThresholdSource) *Handler {
	return &Handler{
		logger:     logger,
		service:    service,
		thresholds: thresholds,
		validator:  validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := ListProductsRequest{
		Category:   r.URL.Query().Get("category"),
		SupplierID: r.URL.Query().Get("supplierId"),
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			req.Limit = parsed
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			req.Offset = parsed
		}
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sheetdb.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "product "+id+" not found")
			return
		}
		h.logger.Error("get product failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create product failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	if err := h.service.Update(r.Context(), id, req); err != nil {
		if errors.Is(err, sheetdb.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "product "+id+" not found")
			return
		}
		h.logger.Error("update product failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("reload product failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sheetdb.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "product "+id+" not found")
			return
		}
		h.logger.Error("delete product failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	fallback := 0
	if h.thresholds != nil {
		fallback = h.thresholds.GlobalLowStockThreshold(r.Context())
	}
	low, err := h.service.LowStock(r.Context(), fallback)
	if err != nil {
		h.logger.Error("low stock listing failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, low)
}
