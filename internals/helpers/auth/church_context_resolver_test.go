package helper

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var (
	trinityID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	graceID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	hopeID    = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	defaultID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
)

func fakeLookup(t *testing.T) SlugLookupFunc {
	t.Helper()
	known := map[string]uuid.UUID{
		"trinity": trinityID,
		"grace":   graceID,
	}
	return func(slug string) (uuid.UUID, error) {
		if id, ok := known[slug]; ok {
			return id, nil
		}
		return uuid.Nil, gorm.ErrRecordNotFound
	}
}

func TestResolveChurch_PriorityOrdering(t *testing.T) {
	// all four sources populated: query wins over cookie over profile over
	// default
	in := ResolveInputs{
		QuerySlug:       "trinity",
		CookieSlug:      "grace",
		ProfileChurchID: hopeID,
		DefaultChurchID: defaultID,
	}
	res := ResolveChurch(in, fakeLookup(t))
	assert.Equal(t, trinityID, res.ChurchID)
	assert.Equal(t, SourceQuery, res.Source)
	assert.False(t, res.Fallback)

	in.QuerySlug = ""
	res = ResolveChurch(in, fakeLookup(t))
	assert.Equal(t, graceID, res.ChurchID)
	assert.Equal(t, SourceCookie, res.Source)

	in.CookieSlug = ""
	res = ResolveChurch(in, fakeLookup(t))
	assert.Equal(t, hopeID, res.ChurchID)
	assert.Equal(t, SourceProfile, res.Source)

	in.ProfileChurchID = uuid.Nil
	res = ResolveChurch(in, fakeLookup(t))
	assert.Equal(t, defaultID, res.ChurchID)
	assert.Equal(t, SourceDefault, res.Source)
	assert.False(t, res.Fallback)
}

func TestResolveChurch_Idempotent(t *testing.T) {
	in := ResolveInputs{
		QuerySlug:       "trinity",
		CookieSlug:      "grace",
		ProfileChurchID: hopeID,
		DefaultChurchID: defaultID,
	}
	first := ResolveChurch(in, fakeLookup(t))
	second := ResolveChurch(in, fakeLookup(t))
	assert.Equal(t, first, second)
}

func TestResolveChurch_UnknownSlugFallsBackToDefault(t *testing.T) {
	in := ResolveInputs{
		QuerySlug:       "no-such-church",
		DefaultChurchID: defaultID,
	}
	res := ResolveChurch(in, fakeLookup(t))
	assert.Equal(t, defaultID, res.ChurchID, "never terminate unresolved")
	assert.Equal(t, SourceDefault, res.Source)
	assert.True(t, res.Fallback)
}

func TestResolveChurch_LookupServiceUnreachable(t *testing.T) {
	broken := func(slug string) (uuid.UUID, error) {
		return uuid.Nil, errors.New("connection refused")
	}
	in := ResolveInputs{
		CookieSlug:      "trinity",
		ProfileChurchID: hopeID,
		DefaultChurchID: defaultID,
	}
	res := ResolveChurch(in, broken)
	assert.Equal(t, defaultID, res.ChurchID)
	assert.True(t, res.Fallback)
}

func TestResolveChurch_QueryIDBeatsSlugLookup(t *testing.T) {
	in := ResolveInputs{
		QueryChurchID:   graceID.String(),
		QuerySlug:       "trinity",
		DefaultChurchID: defaultID,
	}
	res := ResolveChurch(in, fakeLookup(t))
	assert.Equal(t, graceID, res.ChurchID)
	assert.Equal(t, SourceQuery, res.Source)
}

// Scenario: ?church=trinity on first visit, then later visits without the
// query string resolve via the persisted slug to the same church.
func TestResolveChurch_PersistedSlugScenario(t *testing.T) {
	firstVisit := ResolveInputs{
		QuerySlug:       "trinity",
		DefaultChurchID: defaultID,
	}
	res := ResolveChurch(firstVisit, fakeLookup(t))
	assert.Equal(t, trinityID, res.ChurchID)
	assert.Equal(t, "trinity", res.Slug, "slug is surfaced for persistence")

	laterVisit := ResolveInputs{
		CookieSlug:      res.Slug,
		DefaultChurchID: defaultID,
	}
	res2 := ResolveChurch(laterVisit, fakeLookup(t))
	assert.Equal(t, trinityID, res2.ChurchID)
	assert.Equal(t, SourceCookie, res2.Source)
}
