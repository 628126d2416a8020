package openapi

import (
	"os"
	"strings"
)

// Config is the document metadata served with the generated spec.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	// Servers lists extra base URLs advertised after the service domain.
	Servers []string `toml:"servers"`
}

type ConfigEnv struct {
	Title       string
	Description string
	// Servers is read as a comma-separated list.
	Servers string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "Product Admin API"
	}
	if c.Description == "" {
		c.Description = "Per-user product catalog with image uploads and profit reporting."
	}
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Servers != nil {
		c.Servers = overlay.Servers
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := getenv(env.Title); v != "" {
		c.Title = v
	}
	if v := getenv(env.Description); v != "" {
		c.Description = v
	}
	if v := getenv(env.Servers); v != "" {
		var servers []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				servers = append(servers, s)
			}
		}
		c.Servers = servers
	}
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
