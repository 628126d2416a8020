// Package routes declares HTTP routes together with their OpenAPI metadata.
package routes

import (
	"net/http"

	"github.com/JaimeStill/product-admin/pkg/openapi"
)

// Route binds a handler to a method and a pattern relative to its group.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec documents the group's routes under basePath.
// Operations without explicit tags inherit the group tags.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec, nil)
}

func (g Group) addToSpec(basePath string, spec *openapi.Spec, parentTags []string) {
	tags := g.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	prefix := basePath + g.Prefix
	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		op := *r.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		spec.AddOperation(prefix+r.Pattern, r.Method, &op)
	}

	for _, child := range g.Children {
		child.addToSpec(prefix, spec, tags)
	}
}

// Register adds every group's routes to mux relative to the module root
// and documents them in spec under basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		g.register(mux, "")
		g.AddToSpec(basePath, spec)
	}
}

func (g Group) register(mux *http.ServeMux, parent string) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}
