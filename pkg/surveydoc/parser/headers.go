package parser

import "strings"

// CompositeHeader joins the two physical header cells of a column into one
// logical name. Blank parts collapse, so the result never has stray spaces
// at either end.
func CompositeHeader(label, subLabel string) string {
	return strings.TrimSpace(strings.TrimSpace(label) + " " + strings.TrimSpace(subLabel))
}

// CompositeHeaders applies CompositeHeader column by column.
// The shorter row is treated as blank past its end.
func CompositeHeaders(labels, subLabels []string) []string {
	n := len(labels)
	if len(subLabels) > n {
		n = len(subLabels)
	}

	headers := make([]string, n)
	for i := range headers {
		var label, subLabel string
		if i < len(labels) {
			label = labels[i]
		}
		if i < len(subLabels) {
			subLabel = subLabels[i]
		}
		headers[i] = CompositeHeader(label, subLabel)
	}
	return headers
}
