package products

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/product-admin/pkg/handlers"
	"github.com/JaimeStill/product-admin/pkg/pagination"
	"github.com/JaimeStill/product-admin/pkg/routes"
	"github.com/google/uuid"
)

const (
	// draftOverhead bounds the non-image fields of a draft body.
	draftOverhead = 64 << 10
	// searchBodySize bounds a search request body.
	searchBodySize = 16 << 10
)

// Handler provides HTTP endpoints for product operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	pagination  pagination.Config
	maxBodySize int64
}

// NewHandler creates a product handler. maxImageSize bounds request bodies
// so that a draft carrying the largest accepted image still fits.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, maxImageSize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "products"),
		pagination:  pagination,
		maxBodySize: maxImageSize*4/3 + draftOverhead,
	}
}

// Routes returns the product endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/users/{owner}/products",
		Tags:        []string{"Products"},
		Description: "Per-owner product catalog",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "/search", Handler: h.Search, OpenAPI: Spec.Search},
			{Method: "GET", Pattern: "/profit", Handler: h.Profit, OpenAPI: Spec.Profit},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Remove, OpenAPI: Spec.Remove},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.List(r.Context(), r.PathValue("owner"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Search reads the page request from the body, or from the query string
// when the body is empty.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	if status, err := decodeJSON(w, r, searchBodySize, &page, true); err != nil {
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	filters, err := FiltersFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Search(r.Context(), r.PathValue("owner"), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Profit(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sys.Profit(r.Context(), r.PathValue("owner"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Find(r.Context(), r.PathValue("owner"), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	draft, status, err := h.decodeDraft(w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	p, err := h.sys.Create(r.Context(), r.PathValue("owner"), draft)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	draft, status, err := h.decodeDraft(w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	existing, err := h.sys.Find(r.Context(), owner, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	p, err := h.sys.Update(r.Context(), owner, *existing, draft)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	item := Product{ID: id, OwnerID: owner}
	if existing, err := h.sys.Find(r.Context(), owner, id); err == nil {
		item = *existing
	} else if !errors.Is(err, ErrNotFound) {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.sys.Remove(r.Context(), owner, item); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) decodeDraft(w http.ResponseWriter, r *http.Request) (Draft, int, error) {
	var draft Draft
	status, err := decodeJSON(w, r, h.maxBodySize, &draft, false)
	return draft, status, err
}

// decodeJSON reads at most limit bytes into dst. An empty body is accepted
// only when optional is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any, optional bool) (int, error) {
	body := http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return 0, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return http.StatusBadRequest, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return 0, nil
}
