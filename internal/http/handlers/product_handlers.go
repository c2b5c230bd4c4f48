package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
	"github.com/shopkart/storefront/internal/store"
)

// ListProductsHandler godoc
// @Summary List catalog products through the active filter set
// @Description Fetches the catalog and returns the filtered, sorted view. A search query parameter seeds the free-text filter.
// @Tags products
// @Produce json
// @Param search query string false "Free-text search term"
// @Param sort query string false "newest | price-low | price-high | rating"
// @Success 200 {object} ProductsSearchResult
// @Failure 502 {string} string "Backend error"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	if search, ok := r.URL.Query()["search"]; ok && len(search) > 0 {
		h.catalog.SetSearch(search[0])
	}

	if err := h.catalog.Load(r.Context()); err != nil {
		http.Error(w, h.catalog.Err(), http.StatusBadGateway)
		return
	}

	products := h.catalog.Products(store.Sort(r.URL.Query().Get("sort")))
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, ProductsSearchResult{
		Data: products,
		Meta: Meta{TotalCount: len(products)},
	})
}

// GetProductHandler godoc
// @Summary Get a single product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Failure 502 {string} string "Backend error"
// @Router /products/{id} [get]
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.LoadProduct(r.Context(), id); err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, h.catalog.Err(), http.StatusBadGateway)
		return
	}

	product, ok := h.catalog.Product()
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// FacetsHandler godoc
// @Summary List derived category and brand facets
// @Tags products
// @Produce json
// @Success 200 {object} FacetsResult
// @Router /products/facets [get]
func (h *Handler) FacetsHandler(w http.ResponseWriter, r *http.Request) {
	categories, brands := h.catalog.Facets()
	if categories == nil {
		categories = []string{}
	}
	if brands == nil {
		brands = []string{}
	}
	writeJSON(w, http.StatusOK, FacetsResult{Categories: categories, Brands: brands})
}

// SetFilterHandler godoc
// @Summary Set a single filter field
// @Description A null value clears the field.
// @Tags products
// @Accept json
// @Param filter body FilterRequest true "Filter field and value"
// @Success 204
// @Failure 400 {string} string "Invalid input"
// @Router /products/filters [post]
func (h *Handler) SetFilterHandler(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	switch req.Key {
	case "search":
		var value string
		if len(req.Value) > 0 && string(req.Value) != "null" {
			if err := json.Unmarshal(req.Value, &value); err != nil {
				http.Error(w, "invalid filter value", http.StatusBadRequest)
				return
			}
		}
		h.catalog.SetSearch(value)
	case "category", "subcategory", "brand":
		var value *string
		if len(req.Value) > 0 {
			if err := json.Unmarshal(req.Value, &value); err != nil {
				http.Error(w, "invalid filter value", http.StatusBadRequest)
				return
			}
		}
		switch req.Key {
		case "category":
			h.catalog.SetCategory(value)
		case "subcategory":
			h.catalog.SetSubcategory(value)
		case "brand":
			h.catalog.SetBrand(value)
		}
	case "minPrice", "maxPrice", "minRating":
		var value *float64
		if len(req.Value) > 0 {
			if err := json.Unmarshal(req.Value, &value); err != nil {
				http.Error(w, "invalid filter value", http.StatusBadRequest)
				return
			}
		}
		switch req.Key {
		case "minPrice":
			h.catalog.SetMinPrice(value)
		case "maxPrice":
			h.catalog.SetMaxPrice(value)
		case "minRating":
			h.catalog.SetMinRating(value)
		}
	default:
		http.Error(w, "unknown filter key", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearFiltersHandler godoc
// @Summary Reset every filter field to its default
// @Tags products
// @Success 204
// @Router /products/filters [delete]
func (h *Handler) ClearFiltersHandler(w http.ResponseWriter, r *http.Request) {
	h.catalog.ClearFilters()
	w.WriteHeader(http.StatusNoContent)
}
