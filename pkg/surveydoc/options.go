// Package surveydoc turns survey export spreadsheets into per-response PDF
// documents merged with their uploaded attachments.
//
// The work happens in three stages that communicate through files on disk:
// Intake unpacks a delivered archive into a staging tree, Match annotates the
// spreadsheet with the attachment files found for each row, and Generate
// renders and merges one PDF per row.
package surveydoc

// EngineExcelize is the only supported spreadsheet engine.
const EngineExcelize = "excelize"

// Config holds the settings of all three stages.
type Config struct {
	Intake       IntakeConfig       `yaml:"intake"`
	MatchedFiles MatchedFilesConfig `yaml:"matched_files"`
	Match        MatchConfig        `yaml:"match"`
	Generate     GenerateConfig     `yaml:"generate"`
}

// IntakeConfig configures archive intake.
type IntakeConfig struct {
	// SourceDir is scanned for archives. A leading ~ expands to the home directory.
	SourceDir string `yaml:"source_dir"`
	// Pattern is the archive file name glob.
	Pattern string `yaml:"pattern"`
	// WindowHours is how far back archive modification times may lie.
	WindowHours float64 `yaml:"window_hours"`
	// SpreadsheetPath receives the archive's spreadsheet.
	SpreadsheetPath string `yaml:"spreadsheet_path"`
	// StagingDir receives all other archive files.
	StagingDir string `yaml:"staging_dir"`
}

// MatchedFilesConfig describes the derived matched-files column shared by
// the matcher and the generator.
type MatchedFilesConfig struct {
	Column    string `yaml:"column"`
	Separator string `yaml:"separator"`
}

// MatchConfig configures the attachment matcher.
type MatchConfig struct {
	Input      string `yaml:"input"`
	SearchRoot string `yaml:"search_root"`
	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"`
	// IdentifierKeywords select the identifier column, case-insensitively.
	IdentifierKeywords []string `yaml:"identifier_keywords"`
	// Engine names the spreadsheet engine. Only "excelize" is supported.
	Engine string `yaml:"engine"`
}

// GenerateConfig configures the PDF generator.
type GenerateConfig struct {
	Input     string `yaml:"input"`
	OutputDir string `yaml:"output_dir"`
	// TempDir holds the per-row documents before they are merged or renamed.
	TempDir string `yaml:"temp_dir"`
	// HeaderRows is 1 for a single header row or 2 for a composite header.
	HeaderRows int `yaml:"header_rows"`
	// ExcludedKeywords drop every column whose name contains one of them.
	ExcludedKeywords []string `yaml:"excluded_keywords"`
	// NameColumn and GroupColumn name the columns used for output file names.
	// A column reference such as "R" is accepted too. When the name does not
	// resolve, the positional index is used; a negative index disables it.
	NameColumn       string `yaml:"name_column"`
	NameColumnIndex  int    `yaml:"name_column_index"`
	GroupColumn      string `yaml:"group_column"`
	GroupColumnIndex int    `yaml:"group_column_index"`
	// NameSeparator joins the name and group parts of an output file name.
	NameSeparator string `yaml:"name_separator"`
}

// DefaultExcludedKeywords lists the administrative columns of a survey
// export that are left out of row documents.
var DefaultExcludedKeywords = []string{
	"StartDate", "EndDate", "Status", "IPAddress", "Duration (in seconds)",
	"Finished", "RecordedDate", "RecipientLastName", "RecipientFirstName",
	"RecipientEmail", "ExternalReference", "LocationLatitude", "LocationLongitude",
	"DistributionChannel",
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Intake: IntakeConfig{
			SourceDir:       "~/Downloads",
			Pattern:         "*AMTP*.zip",
			WindowHours:     2,
			SpreadsheetPath: "./inbox/data.xlsx",
			StagingDir:      "./inbox/data",
		},
		MatchedFiles: MatchedFilesConfig{
			Column:    "Matched Files",
			Separator: "| ",
		},
		Match: MatchConfig{
			Input:              "./inbox/data.xlsx",
			SearchRoot:         "./inbox/",
			OutputDir:          "outbox",
			OutputFile:         "updated_exported_data.xlsx",
			IdentifierKeywords: []string{"response", "id"},
			Engine:             EngineExcelize,
		},
		Generate: GenerateConfig{
			Input:            "./outbox/updated_exported_data.xlsx",
			OutputDir:        "./outbox/pdfs",
			TempDir:          "./outbox",
			HeaderRows:       2,
			ExcludedKeywords: append([]string(nil), DefaultExcludedKeywords...),
			NameColumnIndex:  17,
			GroupColumnIndex: -1,
			NameSeparator:    " - ",
		},
	}
}
