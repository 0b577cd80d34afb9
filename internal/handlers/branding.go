package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"medialens/internal/config"
)

// BrandingData contains site branding information for templates.
type BrandingData struct {
	SiteTitle                string
	SiteTagline              string
	SiteFooter               string
	EnableAnimatedBackground bool
	Year                     int
}

// GetBrandingData returns branding data from config for template rendering.
func GetBrandingData(cfg *config.Config) BrandingData {
	return BrandingData{
		SiteTitle:                cfg.SiteTitle,
		SiteTagline:              cfg.SiteTagline,
		SiteFooter:               cfg.SiteFooter,
		EnableAnimatedBackground: cfg.EnableAnimatedBackground,
		Year:                     time.Now().Year(),
	}
}

// MergeBranding adds branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	branding := GetBrandingData(cfg)
	data["SiteTitle"] = branding.SiteTitle
	data["SiteTagline"] = branding.SiteTagline
	data["SiteFooter"] = branding.SiteFooter
	data["EnableAnimatedBackground"] = branding.EnableAnimatedBackground
	data["Year"] = branding.Year
	return data
}
