package pipeline

import (
	"mixwise/internal/catalog"
	"mixwise/internal/util"
)

// IsLegitimate decides whether a raw name belongs in the curated
// dataset. Junk patterns win over allow-list membership; anything not
// on the allow-list is rejected (exact match only, no fuzzy matching).
// The decision depends on the name alone.
func IsLegitimate(name string) bool {
	normalized := util.NormalizeName(name)
	if normalized == "" {
		return false
	}
	if catalog.IsJunk(normalized) {
		return false
	}
	return catalog.IsAllowed(normalized)
}
