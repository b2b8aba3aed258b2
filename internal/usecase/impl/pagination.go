package impl

import (
	"marketplace/config"
	"marketplace/internal/domain/entity"
)

// pageLimits are the listing page sizes from the catalog configuration.
type pageLimits struct {
	def    int
	public int
	max    int
}

func newPageLimits(cfg *config.Config) pageLimits {
	limits := pageLimits{def: 10, public: 12, max: 100}
	if cfg == nil || cfg.Catalog == nil {
		return limits
	}

	if cfg.Catalog.DefaultPageSize > 0 {
		limits.def = cfg.Catalog.DefaultPageSize
	}
	if cfg.Catalog.DefaultPublicPageSize > 0 {
		limits.public = cfg.Catalog.DefaultPublicPageSize
	}
	if cfg.Catalog.MaxPageSize > 0 {
		limits.max = cfg.Catalog.MaxPageSize
	}

	return limits
}

func (l pageLimits) normalize(page entity.PageRequest) entity.PageRequest {
	return page.Normalize(l.def, l.max)
}

func (l pageLimits) normalizePublic(page entity.PageRequest) entity.PageRequest {
	return page.Normalize(l.public, l.max)
}
