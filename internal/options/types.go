package options

import "strings"

// ModuleSystem selects the JavaScript module format of the generated package.
type ModuleSystem int

const (
	ModuleUnresolved ModuleSystem = iota
	CommonJS
	ESModule
)

// ParseModuleSystem maps a textual hint ("cjs" or "esm", case-insensitive) to
// a ModuleSystem. Anything else is ModuleUnresolved.
func ParseModuleSystem(hint string) ModuleSystem {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "esm":
		return ESModule
	case "cjs":
		return CommonJS
	default:
		return ModuleUnresolved
	}
}

// PackageType returns the package.json "type" value.
func (m ModuleSystem) PackageType() string {
	if m == ESModule {
		return "module"
	}
	return "commonjs"
}

// Label returns the short upper-case name ("CJS" or "ESM").
func (m ModuleSystem) Label() string {
	if m == ESModule {
		return "ESM"
	}
	return "CJS"
}

// Hint returns the textual hint form ("cjs" or "esm").
func (m ModuleSystem) Hint() string {
	return strings.ToLower(m.Label())
}

func (m ModuleSystem) String() string {
	switch m {
	case CommonJS:
		return "CommonJS"
	case ESModule:
		return "ESModule"
	default:
		return "unresolved"
	}
}

// NoTestScript is the package.json test script used when neither Jest nor a
// custom test command is configured.
const NoTestScript = `echo "no tests configured" && exit 0`

// Defaults for the supplementary manifest fields.
const (
	DefaultVersion    = "0.0.0"
	DefaultNodeEngine = ">=18"
)

// ScaffoldOptions is the caller-supplied, partially populated input.
type ScaffoldOptions struct {
	ProjectDir string
	Name       string
	Owner      string
	Repo       string

	// ESM is an explicit module choice; nil when not given.
	ESM *bool
	// Module is a textual hint, "esm" or "cjs", consulted when ESM is nil.
	Module string

	// Yes accepts every default without prompting.
	Yes bool

	// Jest requests a jest.config.cjs; nil when not given.
	Jest *bool
	// TestCommand is the literal test script and overrides Jest.
	TestCommand string

	Version    string
	NodeEngine string
}

// ResolvedConfig is the fully determined configuration. It is not modified
// after Resolve returns.
type ResolvedConfig struct {
	ProjectDir   string
	Name         string
	Owner        string
	Repo         string
	ModuleSystem ModuleSystem
	UseJest      bool
	TestCommand  string
	Version      string
	NodeEngine   string
}

// PackageType returns "module" for ESM and "commonjs" otherwise.
func (c *ResolvedConfig) PackageType() string {
	return c.ModuleSystem.PackageType()
}

// TestScript returns the package.json "test" script.
func (c *ResolvedConfig) TestScript() string {
	switch {
	case c.TestCommand != "":
		return c.TestCommand
	case c.UseJest:
		return "jest"
	default:
		return NoTestScript
	}
}
