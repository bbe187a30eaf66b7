package catalog

import "strings"

// DirectoryKey derives the catalog subdirectory name for a designer from
// their display name: lower-cased with every space and hyphen removed.
// Example: "Jean-Luc du Pont" -> "jeanlucdupont".
//
// Other punctuation is kept so the key stays a faithful projection of the
// name. Every call site that locates a designer directory must go through
// this function.
func DirectoryKey(name string) string {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "")
	return strings.ReplaceAll(key, "-", "")
}
