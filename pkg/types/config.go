package types

import "fmt"

// defaultContact is the placeholder operator address used when neither the
// config file nor ARXIV_CONTACT supplies one.
const defaultContact = "contact@example.com"

// ArxivConfig holds settings for the arXiv feed query.
type ArxivConfig struct {
	// Category is the arXiv subject class queried (default "math.AG").
	Category string `json:"category" yaml:"category" mapstructure:"category"`

	// Contact is the operator contact address included in the User-Agent
	// header, as arXiv asks of automated clients. The ARXIV_CONTACT
	// environment variable overrides the file value.
	Contact string `json:"contact" yaml:"contact" mapstructure:"contact"`
}

// UserAgent returns the client identifier sent with every outgoing request.
func (a ArxivConfig) UserAgent() string {
	contact := a.Contact
	if contact == "" {
		contact = defaultContact
	}
	return fmt.Sprintf("ag-weekly-bot (contact: %s)", contact)
}

// LimitsConfig bounds the fetch and the report.
type LimitsConfig struct {
	// MaxFetch is the maximum number of entries requested from the feed.
	MaxFetch int `json:"max_fetch" yaml:"max_fetch" mapstructure:"max_fetch"`

	// LookbackDays is the trailing window: entries whose newest timestamp is
	// more than this many whole days old are dropped.
	LookbackDays int `json:"lookback_days" yaml:"lookback_days" mapstructure:"lookback_days"`

	// MaxDetails caps the fully detailed results in the theorems report;
	// qualifying results beyond it are listed title-only.
	MaxDetails int `json:"max_details" yaml:"max_details" mapstructure:"max_details"`
}

// ScoringConfig holds the profile multipliers and the inclusion threshold.
type ScoringConfig struct {
	// TitleWeight multiplies keyword hits in the title (default 1.0).
	TitleWeight float64 `json:"title_weight" yaml:"title_weight" mapstructure:"title_weight"`

	// AbstractWeight multiplies keyword hits in the abstract (default 1.0).
	AbstractWeight float64 `json:"abstract_weight" yaml:"abstract_weight" mapstructure:"abstract_weight"`

	// AuthorWeight multiplies priority-author hits (default 1.0).
	AuthorWeight float64 `json:"author_weight" yaml:"author_weight" mapstructure:"author_weight"`

	// CategoryWeight multiplies subject-term hits (default 0.5).
	CategoryWeight float64 `json:"category_weight" yaml:"category_weight" mapstructure:"category_weight"`

	// Threshold is the minimum score an entry needs to be listed.
	Threshold float64 `json:"threshold" yaml:"threshold" mapstructure:"threshold"`
}

// WeightedTerm is one profile term with its weight (1 when omitted).
type WeightedTerm struct {
	Term   string  `json:"term" yaml:"term" mapstructure:"term"`
	Weight float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// PriorityAuthor is one followed author with a weight (1 when omitted).
type PriorityAuthor struct {
	Name   string  `json:"name" yaml:"name" mapstructure:"name"`
	Weight float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// ProfileConfig is the interest profile entries are scored against.
type ProfileConfig struct {
	// Keywords are matched case-insensitively against title and abstract.
	Keywords []WeightedTerm `json:"keywords" yaml:"keywords" mapstructure:"keywords"`

	// AuthorsPriority names are matched as substrings of the joined author list.
	AuthorsPriority []PriorityAuthor `json:"authors_priority" yaml:"authors_priority" mapstructure:"authors_priority"`

	// MSCTerms are matched against the joined category tag list.
	MSCTerms []WeightedTerm `json:"msc_terms" yaml:"msc_terms" mapstructure:"msc_terms"`

	// Exclude terms subtract a fixed penalty when found in title or abstract.
	Exclude []string `json:"exclude" yaml:"exclude" mapstructure:"exclude"`
}

// OutputConfig controls report naming and layout resources.
type OutputConfig struct {
	// FilenamePrefix is the leading part of the output file name; the run
	// date (UTC+9) and extension are appended.
	FilenamePrefix string `json:"filename_prefix" yaml:"filename_prefix" mapstructure:"filename_prefix"`

	// Dir is the directory reports are written to (default "out").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// FontFile is a UTF-8 TTF registered for all report text. The Japanese
	// headings need a CJK-capable font; empty falls back to the built-in
	// core font, which covers Latin only.
	FontFile string `json:"font_file" yaml:"font_file" mapstructure:"font_file"`

	// IncludeOthersTitles gates the title-only overflow section of the
	// theorems report (default false).
	IncludeOthersTitles bool `json:"include_others_titles" yaml:"include_others_titles" mapstructure:"include_others_titles"`
}

// Config groups all sections of the ag-weekly configuration file.
type Config struct {
	Arxiv   ArxivConfig   `json:"arxiv" yaml:"arxiv" mapstructure:"arxiv"`
	Limits  LimitsConfig  `json:"limits" yaml:"limits" mapstructure:"limits"`
	Scoring ScoringConfig `json:"scoring" yaml:"scoring" mapstructure:"scoring"`
	Profile ProfileConfig `json:"profile" yaml:"profile" mapstructure:"profile"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
}
