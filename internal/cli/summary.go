package cli

import (
	"fmt"
	"io"

	"github.com/thegreatbey/strange-lil-scaffold/internal/options"
	"github.com/thegreatbey/strange-lil-scaffold/internal/scaffold"
)

// fileNotes are appended to a file's summary line when it is in the report.
var fileNotes = map[scaffold.FileID]string{
	scaffold.CIWorkflow: "  (requires repo secret NPM_TOKEN)",
	scaffold.TestConfig: "  (remember to: npm i -D jest ts-jest @types/jest)",
}

func moduleDescription(m options.ModuleSystem) string {
	if m == options.ESModule {
		return "ESM (type=module; tsconfig.module=ESNext, moduleResolution=NodeNext)"
	}
	return "CJS (type=commonjs; tsconfig.module=CommonJS)"
}

// printSummary prints the resolved module system and every file's status.
func printSummary(w io.Writer, cfg *options.ResolvedConfig, report *scaffold.Report) {
	fmt.Fprintf(w, "Scaffolded at: %s\n", report.ProjectDir)
	fmt.Fprintf(w, "→ Module system: %s\n", moduleDescription(cfg.ModuleSystem))

	for _, e := range report.Entries {
		if e.ID == scaffold.TestConfig && e.Status == scaffold.StatusNone {
			fmt.Fprintln(w, "jest: not configured")
			continue
		}
		fmt.Fprintf(w, "%s: %s%s\n", e.Path, e.Status, fileNotes[e.ID])
	}

	script := "(no-op)"
	if s := cfg.TestScript(); s != options.NoTestScript {
		script = fmt.Sprintf("%q", s)
	}
	fmt.Fprintf(w, "test script: %s\n", script)
}
