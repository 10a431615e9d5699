// Package pdfdoc renders row documents and merges them with attachments.
package pdfdoc

// PointsPerInch is the number of PDF points per inch.
const PointsPerInch = 72

// Page geometry and typography of a row document, in points.
// These follow the usual letter-size report defaults: one inch margins and
// 10pt text on 12pt leading.
const (
	PageMargin  = 1 * PointsPerInch
	FontSize    = 10
	LineHeight  = 12
	FieldSpacer = 12
)
