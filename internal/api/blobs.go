package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/product-admin/pkg/handlers"
	"github.com/JaimeStill/product-admin/pkg/openapi"
	"github.com/JaimeStill/product-admin/pkg/routes"
	"github.com/JaimeStill/product-admin/pkg/storage"
	"github.com/h2non/filetype"
)

// BlobHandler serves stored blobs at the addresses returned by storage URL lookups.
type BlobHandler struct {
	blobs  storage.System
	logger *slog.Logger
}

func NewBlobHandler(blobs storage.System, logger *slog.Logger) *BlobHandler {
	return &BlobHandler{
		blobs:  blobs,
		logger: logger.With("handler", "blobs"),
	}
}

func (h *BlobHandler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/blobs",
		Tags:        []string{"Blobs"},
		Description: "Stored product images",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.Serve, OpenAPI: blobSpec},
		},
	}
}

// Serve writes the blob under the wildcard key. The content type is sniffed
// from the stored bytes.
func (h *BlobHandler) Serve(w http.ResponseWriter, r *http.Request) {
	data, err := h.blobs.Retrieve(r.Context(), r.PathValue("key"))
	if err != nil {
		handlers.RespondError(w, h.logger, blobStatus(err), err)
		return
	}

	contentType := "application/octet-stream"
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		contentType = kind.MIME.Value
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func blobStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

var blobSpec = &openapi.Operation{
	Summary:     "Get blob",
	Description: "Serve a stored image. Addresses carry a version query so overwritten images are refetched.",
	Parameters: []*openapi.Parameter{
		openapi.PathParam("key", "Blob key, {owner}/{millis}"),
	},
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Blob content",
			Content: map[string]*openapi.MediaType{
				"image/*": {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
			},
		},
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
	},
}
