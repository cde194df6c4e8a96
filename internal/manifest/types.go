package manifest

// Scripts holds the npm scripts of a generated package.
type Scripts struct {
	Build          string `json:"build"`
	PrepublishOnly string `json:"prepublishOnly"`
	Start          string `json:"start"`
	Test           string `json:"test"`
}

// Engines pins the supported Node.js range.
type Engines struct {
	Node string `json:"node"`
}

// PackageJSON is the generated package manifest. Field order is the order in
// which the fields are written.
type PackageJSON struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Bin         map[string]string `json:"bin"`
	Main        string            `json:"main"`
	Files       []string          `json:"files"`
	Scripts     Scripts           `json:"scripts"`
	License     string            `json:"license"`
	Engines     Engines           `json:"engines"`
}

// PackageInput holds the caller-provided values for a PackageJSON.
type PackageInput struct {
	Name       string
	Version    string
	Type       string // "commonjs" or "module"
	TestScript string
	NodeEngine string
}

const entryPoint = "dist/cli.js"

// NewPackageJSON builds the package manifest for a scaffolded CLI.
func NewPackageJSON(in PackageInput) *PackageJSON {
	return &PackageJSON{
		Name:        in.Name,
		Version:     in.Version,
		Description: "Scaffolded npm package",
		Type:        in.Type,
		Bin:         map[string]string{in.Name: entryPoint},
		Main:        entryPoint,
		Files:       []string{"dist", "README*", "LICENSE*"},
		Scripts: Scripts{
			Build:          "tsc -p tsconfig.json",
			PrepublishOnly: "npm run build",
			Start:          "node " + entryPoint + " --help",
			Test:           in.TestScript,
		},
		License: "MIT",
		Engines: Engines{Node: in.NodeEngine},
	}
}

// CompilerOptions is the tsconfig.json "compilerOptions" block.
type CompilerOptions struct {
	Target                           string `json:"target"`
	OutDir                           string `json:"outDir"`
	RootDir                          string `json:"rootDir"`
	Strict                           bool   `json:"strict"`
	ESModuleInterop                  bool   `json:"esModuleInterop"`
	SkipLibCheck                     bool   `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool   `json:"forceConsistentCasingInFileNames"`
	Module                           string `json:"module"`
	ModuleResolution                 string `json:"moduleResolution,omitempty"`
}

// TSConfig is the generated compiler configuration.
type TSConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// NewTSConfig builds the compiler configuration. ESM projects use
// module=ESNext with NodeNext resolution; CommonJS projects use module=CommonJS.
func NewTSConfig(esm bool) *TSConfig {
	c := &TSConfig{
		CompilerOptions: CompilerOptions{
			Target:                           "ES2020",
			OutDir:                           "dist",
			RootDir:                          "src",
			Strict:                           true,
			ESModuleInterop:                  true,
			SkipLibCheck:                     true,
			ForceConsistentCasingInFileNames: true,
			Module:                           "CommonJS",
		},
		Include: []string{"src"},
		Exclude: []string{"node_modules", "dist", "**/*.test.ts", "**/*.spec.ts"},
	}
	if esm {
		c.CompilerOptions.Module = "ESNext"
		c.CompilerOptions.ModuleResolution = "NodeNext"
	}
	return c
}
