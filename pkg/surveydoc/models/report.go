package models

// ArchiveResult describes what happened to a single archive during intake.
type ArchiveResult struct {
	// Path is the archive path.
	Path string `json:"path"`
	// Spreadsheet is where the archive's spreadsheet was moved, if it had one.
	Spreadsheet string `json:"spreadsheet,omitempty"`
	// Staged is the number of loose files moved into the staging tree.
	Staged int `json:"staged"`
	// Skipped is true when the archive was not a readable zip file.
	Skipped bool `json:"skipped,omitempty"`
	// Error holds the failure message for archives that failed mid-way.
	Error string `json:"error,omitempty"`
}

// IntakeReport summarizes an archive intake run.
type IntakeReport struct {
	Archives []ArchiveResult `json:"archives"`
}

// MatchReport summarizes an attachment matcher run.
type MatchReport struct {
	// IdentifierColumn is the column used as join key.
	IdentifierColumn string `json:"identifier_column"`
	// Rows is the number of data rows processed.
	Rows int `json:"rows"`
	// MatchedRows is the number of rows with at least one matched file.
	MatchedRows int `json:"matched_rows"`
	// Files is the number of files seen under the search root.
	Files int `json:"files"`
	// Output is the path of the written spreadsheet.
	Output string `json:"output"`
}

// RowResult describes the document produced for a single row.
type RowResult struct {
	Index int `json:"index"`
	// Output is the final PDF path.
	Output string `json:"output"`
	// Attachments is the number of attachments merged into the output.
	Attachments int `json:"attachments"`
	// Skipped is the number of listed attachments that were missing or not PDFs.
	Skipped int `json:"skipped"`
	// Pages is the page count of the final PDF.
	Pages int `json:"pages"`
}

// GenerateReport summarizes a PDF generator run.
type GenerateReport struct {
	Rows []RowResult `json:"rows"`
}
