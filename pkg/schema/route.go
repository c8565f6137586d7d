/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

import "strings"

// Returns route name for class.
//
//   - single letter names and edges: `/` + lower cased name,
//   - names ending with `ary` and reserved words: `/` + lower cased name,
//   - names ending with consonant and `y`: `y` replaced with `ies`,
//   - other names: `s` appended.
func RouteName(name string, isEdge bool) string {
	lower := strings.ToLower(name)
	switch {
	case len(name) == 1, isEdge:
		return "/" + lower
	case strings.HasSuffix(lower, "ary"), unpluralizedRouteNames[lower]:
		return "/" + lower
	case len(lower) > 1 && strings.HasSuffix(lower, "y") && !isVowel(lower[len(lower)-2]):
		return "/" + strings.TrimSuffix(lower, "y") + "ies"
	}
	return "/" + lower + "s"
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}
