package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Fallback slug bases used when a title normalizes to nothing URL-safe.
const (
	SlugFallbackPost    = "post"
	SlugFallbackSection = "section"
)

// SlugExistsFunc reports whether a slug is already taken by a row other than
// excludeID. excludeID is uuid.Nil when allocating for a new row.
type SlugExistsFunc func(ctx context.Context, candidate string, excludeID uuid.UUID) (bool, error)

// SlugifyTitle normalizes a title to a URL-safe base token: lowercase,
// transliterated, non-alphanumerics collapsed to hyphens. Returns fallback
// when nothing survives normalization.
func SlugifyTitle(title, fallback string) string {
	base := slug.Make(title)
	if base == "" {
		return fallback
	}
	return base
}

// AllocateSlug derives a unique slug from the title: it probes the
// normalized base, then base-1, base-2, … until exists reports no collision.
// Deterministic given the same existing-slug set; only called when the
// caller did not supply an explicit slug.
func AllocateSlug(ctx context.Context, title, fallback string, exists SlugExistsFunc, excludeID uuid.UUID) (string, error) {
	base := SlugifyTitle(title, fallback)

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
