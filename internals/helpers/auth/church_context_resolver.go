// file: internals/helpers/auth/church_context_resolver.go
package helper

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"weonamission_backend/internals/configs"
)

// CookieActiveChurchSlug is the durable client-side storage key for the
// last-selected church slug.
const CookieActiveChurchSlug = "active_church_slug"

type ResolutionSource string

const (
	SourceQuery   ResolutionSource = "query"
	SourceCookie  ResolutionSource = "cookie"
	SourceProfile ResolutionSource = "profile"
	SourceDefault ResolutionSource = "default"
)

// Resolution is the outcome of tenant resolution for one request.
// Fallback=true marks the resolved-with-fallback state: the ID is fully
// usable, the flag exists for diagnostics only.
type Resolution struct {
	ChurchID uuid.UUID
	Slug     string
	Source   ResolutionSource
	Fallback bool
}

// ResolveInputs are the raw resolution sources, gathered synchronously from
// one request. Keeping them explicit makes resolution a pure function of
// (navigation request, durable storage, profile).
type ResolveInputs struct {
	QuerySlug       string
	QueryChurchID   string
	CookieSlug      string
	ProfileChurchID uuid.UUID
	DefaultChurchID uuid.UUID
}

// SlugLookupFunc resolves a church slug to its ID.
type SlugLookupFunc func(slug string) (uuid.UUID, error)

/* ==========================================
   Core resolution: query → cookie → profile → default
   First match wins; failed lookups fall through to the default rather
   than leaving the tenant unresolved.
========================================== */
func ResolveChurch(in ResolveInputs, lookup SlugLookupFunc) Resolution {
	fallbackFrom := func(src ResolutionSource) Resolution {
		return Resolution{ChurchID: in.DefaultChurchID, Source: SourceDefault, Fallback: src != SourceDefault}
	}

	// 1) explicit selector in the navigation request
	if id := strings.TrimSpace(in.QueryChurchID); id != "" {
		if uid, err := uuid.Parse(id); err == nil && uid != uuid.Nil {
			return Resolution{ChurchID: uid, Source: SourceQuery}
		}
	}
	if slug := strings.TrimSpace(in.QuerySlug); slug != "" {
		if uid, err := lookup(slug); err == nil && uid != uuid.Nil {
			return Resolution{ChurchID: uid, Slug: slug, Source: SourceQuery}
		}
		log.Printf("[WARN] church slug %q from query did not resolve, falling back to default", slug)
		return fallbackFrom(SourceQuery)
	}

	// 2) previously persisted slug
	if slug := strings.TrimSpace(in.CookieSlug); slug != "" {
		if uid, err := lookup(slug); err == nil && uid != uuid.Nil {
			return Resolution{ChurchID: uid, Slug: slug, Source: SourceCookie}
		}
		log.Printf("[WARN] persisted church slug %q did not resolve, falling back to default", slug)
		return fallbackFrom(SourceCookie)
	}

	// 3) the authenticated user's own church
	if in.ProfileChurchID != uuid.Nil {
		return Resolution{ChurchID: in.ProfileChurchID, Source: SourceProfile}
	}

	// 4) single-tenant installation default
	return Resolution{ChurchID: in.DefaultChurchID, Source: SourceDefault}
}

/* ============================
   Slug → ID lookup (via DB)
============================ */
func GetChurchIDBySlug(c *fiber.Ctx, slug string) (uuid.UUID, error) {
	dbAny := c.Locals("DB")
	if dbAny == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB context not available")
	}
	db, ok := dbAny.(*gorm.DB)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB context invalid")
	}

	var id uuid.UUID
	// case-insensitive & only alive
	if err := db.Raw(`
		SELECT church_id
		FROM churches
		WHERE LOWER(church_slug) = LOWER(?) AND church_is_active = TRUE AND church_deleted_at IS NULL
		LIMIT 1
	`, strings.TrimSpace(slug)).Scan(&id).Error; err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return id, nil
}

/* ==========================================
   Request-level resolution + persistence
========================================== */
func ResolveChurchContext(c *fiber.Ctx) Resolution {
	in := gatherInputs(c)

	res := ResolveChurch(in, func(slug string) (uuid.UUID, error) {
		return GetChurchIDBySlug(c, slug)
	})

	// persist an explicit, successfully resolved selector for future visits
	if res.Source == SourceQuery && res.Slug != "" {
		c.Cookie(&fiber.Cookie{
			Name:     CookieActiveChurchSlug,
			Value:    res.Slug,
			Path:     "/",
			Expires:  time.Now().Add(180 * 24 * time.Hour),
			HTTPOnly: false,
			SameSite: "Lax",
		})
	}

	c.Locals("active_church_id", res.ChurchID.String())
	c.Locals("church_resolution_source", string(res.Source))
	c.Locals("church_resolution_fallback", res.Fallback)
	return res
}

func gatherInputs(c *fiber.Ctx) ResolveInputs {
	in := ResolveInputs{
		QuerySlug:       strings.TrimSpace(c.Query("church")),
		QueryChurchID:   strings.TrimSpace(c.Query("church_id")),
		CookieSlug:      strings.TrimSpace(c.Cookies(CookieActiveChurchSlug)),
		DefaultChurchID: DefaultChurchID(),
	}
	if in.QuerySlug != "" {
		if s, err := url.QueryUnescape(in.QuerySlug); err == nil {
			in.QuerySlug = s
		}
	}
	if raw, ok := c.Locals("church_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			in.ProfileChurchID = id
		}
	}
	return in
}

func DefaultChurchID() uuid.UUID {
	if id, err := uuid.Parse(strings.TrimSpace(configs.DefaultChurchID)); err == nil {
		return id
	}
	return uuid.Nil
}

// GetActiveChurchID reads the church resolved for this request. Controllers
// must pass this explicitly into every query; no entity access happens
// without it.
func GetActiveChurchID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("active_church_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Church context not resolved. Include ?church=<slug> or sign in.")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Church context not resolved. Include ?church=<slug> or sign in.")
	}
	return id, nil
}

/* ==========================================
   Display metadata — independent of ID resolution
========================================== */

type ChurchMeta struct {
	Name        string `json:"church_name"`
	Slug        string `json:"church_slug"`
	Destination string `json:"church_trip_destination"`
}

// PlaceholderChurchName is substituted when the metadata fetch fails; the
// resolved ID stays valid regardless.
const PlaceholderChurchName = "Mission Trip"

func GetChurchMeta(c *fiber.Ctx, id uuid.UUID) ChurchMeta {
	placeholder := ChurchMeta{Name: PlaceholderChurchName}

	dbAny := c.Locals("DB")
	db, ok := dbAny.(*gorm.DB)
	if !ok || db == nil {
		return placeholder
	}

	var meta ChurchMeta
	err := db.Raw(`
		SELECT church_name AS name, church_slug AS slug, church_trip_destination AS destination
		FROM churches
		WHERE church_id = ? AND church_deleted_at IS NULL
		LIMIT 1
	`, id).Scan(&meta).Error
	if err != nil || meta.Name == "" {
		log.Printf("[WARN] church meta fetch failed for %s: %v", id, err)
		return placeholder
	}
	return meta
}
