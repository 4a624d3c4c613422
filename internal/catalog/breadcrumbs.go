package catalog

import "strings"

// SplitBreadcrumbs extracts up to NumCategories category labels from a
// breadcrumb string like "Home > Baby Products > Nursing & Feeding". Segments
// are split on ">" and trimmed; the first segment is the site root and is
// always dropped. Slot i is empty when the breadcrumb has no segment for it.
func SplitBreadcrumbs(s string) [NumCategories]string {
	var categories [NumCategories]string

	if strings.TrimSpace(s) == "" {
		return categories
	}

	parts := strings.Split(s, ">")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	// Skip the root, keep the next NumCategories.
	parts = parts[1:]
	for i := 0; i < len(parts) && i < NumCategories; i++ {
		categories[i] = parts[i]
	}
	return categories
}
