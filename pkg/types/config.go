package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gutenwords/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// BooksDir is the base directory for books (contains raw/, metadata/).
	BooksDir string `json:"books_dir" yaml:"books_dir"`
}

// AnalysisConfig holds settings for the analysis stage.
type AnalysisConfig struct {
	// MinCount is the minimum occurrence count for a word to be kept (default 5).
	MinCount int `json:"min_count" yaml:"min_count"`

	// TopK is the number of highest-count words stored per book (default 10).
	TopK int `json:"top_k" yaml:"top_k"`

	// StopwordsPath is the path to a newline-delimited stopword list.
	// A missing or unreadable file means no stopword filtering.
	StopwordsPath string `json:"stopwords_path" yaml:"stopwords_path"`
}

// LibraryConfig holds settings for the library store.
type LibraryConfig struct {
	// LibraryDir is the base directory for the library (contains index/).
	LibraryDir string `json:"library_dir" yaml:"library_dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Library  LibraryConfig  `json:"library" yaml:"library"`
}
