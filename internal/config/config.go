package config

import (
	"strings"

	"github.com/typebureau/designer-catalog/internal/env"
	"github.com/typebureau/designer-catalog/pkg/catalog"
)

type Config struct {
	ENV     string
	Catalog CatalogConfig
}

type CatalogConfig struct {
	// Bounding box for avatar thumbnails, in pixels.
	AvatarMaxSize int
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		ENV: env.GetString("ENV", "development"),
		Catalog: CatalogConfig{
			AvatarMaxSize: env.GetInt("CATALOG_AVATAR_MAX_SIZE", catalog.DefaultAvatarSize),
		},
	}
}
