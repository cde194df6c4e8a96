package scaffold

// FileID identifies one file of the scaffold.
type FileID string

const (
	Manifest      FileID = "manifest"
	BuildConfig   FileID = "build-config"
	IgnoreFile    FileID = "ignore-file"
	CIWorkflow    FileID = "ci-workflow"
	TestConfig    FileID = "test-config"
	SeedSource    FileID = "seed-source"
	Documentation FileID = "documentation"
)

// AllFiles lists every scaffold file in report order.
var AllFiles = []FileID{
	Manifest,
	BuildConfig,
	IgnoreFile,
	CIWorkflow,
	TestConfig,
	SeedSource,
	Documentation,
}

var relPaths = map[FileID]string{
	Manifest:      "package.json",
	BuildConfig:   "tsconfig.json",
	IgnoreFile:    ".gitignore",
	CIWorkflow:    ".github/workflows/publish.yml",
	TestConfig:    "jest.config.cjs",
	SeedSource:    "src/cli.ts",
	Documentation: "README.md",
}

// Path returns the slash-separated path relative to the project directory.
func (id FileID) Path() string {
	return relPaths[id]
}

// Status is the outcome of materializing one file.
type Status string

const (
	// StatusCreated means the file did not exist and was written.
	StatusCreated Status = "created"
	// StatusSkipped means the file existed and its strategy forbids writing.
	StatusSkipped Status = "skipped"
	// StatusOverwritten means an existing file's content was edited.
	StatusOverwritten Status = "overwritten"
	// StatusUnchanged means the file existed and needed no change.
	StatusUnchanged Status = "unchanged"
	// StatusNone means the file was not requested.
	StatusNone Status = "none"
)

// Strategy decides what happens when a target file already exists.
type Strategy int

const (
	// CreateOnly writes absent files and never opens existing ones.
	CreateOnly Strategy = iota
	// CreateOrSkip writes absent files and reports existing ones as skipped.
	CreateOrSkip
	// CreateOrMerge writes absent files and merges into existing ones.
	CreateOrMerge
)

func (s Strategy) String() string {
	switch s {
	case CreateOnly:
		return "create-only"
	case CreateOrSkip:
		return "create-or-skip"
	case CreateOrMerge:
		return "create-or-merge"
	default:
		return "unknown"
	}
}

// StrategyFor returns the write strategy for a scaffold file.
func StrategyFor(id FileID) Strategy {
	switch id {
	case SeedSource:
		return CreateOnly
	case Documentation:
		return CreateOrMerge
	default:
		return CreateOrSkip
	}
}
