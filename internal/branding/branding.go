// Package branding provides compile-time identity values for the CLI.
//
// The identity lives in branding.yaml next to this file and is baked into
// the binary with //go:embed, so a fork only has to edit one file.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	DefaultOwner string `yaml:"default_owner"`
	GoModule     string `yaml:"go_module"`
	GitHubRepo   string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "create-strange-lil-scaffold",
			DisplayName:  "Strange Lil Scaffold",
			Description:  "Scaffold a tiny TypeScript CLI package",
			HomeDir:      ".strange-lil-scaffold",
			DefaultOwner: "thegreatbey",
			GoModule:     "github.com/thegreatbey/strange-lil-scaffold",
			GitHubRepo:   "thegreatbey/strange-lil-scaffold",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-strange-lil-scaffold").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { load(); return defaults.HomeDir }

// DefaultOwner returns the GitHub owner used for badge URLs when none is given.
func DefaultOwner() string { load(); return defaults.DefaultOwner }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string of this tool.
func GitHubRepo() string { load(); return defaults.GitHubRepo }
