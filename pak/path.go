// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

import (
	"sort"
	"strings"
)

// normalizePath strips a leading "/" so paths satisfy the PakModel
// invariant that stored paths never carry one, and normalizes "\" to "/"
// since both separators appear across PAK mount points and entry paths.
func normalizePath(raw string) string {
	raw = strings.ReplaceAll(raw, `\`, "/")
	return strings.TrimPrefix(raw, "/")
}

// directoriesOf returns the sorted, de-duplicated set of every proper
// ancestor directory of the given file paths, split on "/".
func directoriesOf(paths []string) []string {
	seen := make(map[string]struct{})
	for _, p := range paths {
		segments := strings.Split(p, "/")
		for i := 1; i < len(segments); i++ {
			dir := strings.Join(segments[:i], "/")
			if dir == "" {
				continue
			}
			seen[dir] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
