package products

import "github.com/JaimeStill/product-admin/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Search *openapi.Operation
	Profit *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Remove *openapi.Operation
}

var ownerParam = openapi.PathParam("owner", "Owning account identifier")

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List products",
		Description: "List every product of the owner, newest first",
		Parameters:  []*openapi.Parameter{ownerParam},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Products",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Product")}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search products",
		Description: "Search products with pagination in the request body, or in the query string when the body is empty",
		Parameters: []*openapi.Parameter{
			ownerParam,
			openapi.QueryParam("name", "string", "Filter by name (contains)", false),
			openapi.QueryParam("price", "string", "Filter by exact price", false),
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("sort", "string", "Sort fields, e.g. -Price,Name", false),
		},
		RequestBody: openapi.RequestBodyJSON("PageRequest", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Search results", "ProductPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Profit: &openapi.Operation{
		Summary:     "Profit summary",
		Description: "Sum of price times units sold across the owner's products",
		Parameters:  []*openapi.Parameter{ownerParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Profit summary", "ProfitSummary"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find product",
		Description: "Find product by ID",
		Parameters: []*openapi.Parameter{
			ownerParam,
			openapi.UUIDParam("id", "Product ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Product details", "Product"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create product",
		Description: "Create a product. A data: URL in image.url is uploaded and replaced with the served address.",
		Parameters:  []*openapi.Parameter{ownerParam},
		RequestBody: openapi.RequestBodyJSON("ProductDraft", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Product created", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "Request body too large"},
			502: openapi.ResponseRef("BadGateway"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update product",
		Description: "Update product fields. A changed image is uploaded over the existing image path.",
		Parameters: []*openapi.Parameter{
			ownerParam,
			openapi.UUIDParam("id", "Product ID"),
		},
		RequestBody: openapi.RequestBodyJSON("ProductDraft", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Product updated", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			502: openapi.ResponseRef("BadGateway"),
		},
	},
	Remove: &openapi.Operation{
		Summary:     "Delete product",
		Description: "Delete product record. The image blob is retained.",
		Parameters: []*openapi.Parameter{
			ownerParam,
			openapi.UUIDParam("id", "Product ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Product deleted"},
		},
	},
}

func nonNegative() *float64 {
	v := 0.0
	return &v
}

func minLength(n int) *int {
	return &n
}

func imageSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"path": {Type: "string", Description: "Stable blob key, {owner}/{millis}"},
			"url":  {Type: "string", Description: "Served address, data: payload, or empty"},
		},
	}
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Product": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"owner_id":   {Type: "string"},
				"name":       {Type: "string"},
				"price":      {Type: "string", Format: "decimal", Example: "19.99"},
				"sold_units": {Type: "integer"},
				"image":      imageSchema(),
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"ProductDraft": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":       {Type: "string", MinLength: minLength(minNameLength)},
				"price":      {Type: "string", Format: "decimal", Example: "19.99"},
				"sold_units": {Type: "integer", Minimum: nonNegative()},
				"image":      imageSchema(),
				"updated_at": {Type: "string", Format: "date-time", Description: "Version read by the client; stale versions are rejected"},
			},
			Required: []string{"name", "price", "sold_units"},
		},
		"ProductPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Product")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"ProfitSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total":     {Type: "string", Format: "decimal"},
				"formatted": {Type: "string", Example: "$1,234.50"},
				"count":     {Type: "integer"},
			},
		},
	}
}
