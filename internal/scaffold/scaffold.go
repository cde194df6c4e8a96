package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/thegreatbey/strange-lil-scaffold/internal/manifest"
	"github.com/thegreatbey/strange-lil-scaffold/internal/options"
)

// Entry is the outcome for one scaffold file.
type Entry struct {
	ID     FileID
	Path   string
	Status Status
}

// Report holds the per-file outcome of a materialization.
type Report struct {
	ProjectDir string
	Entries    []Entry
	Warnings   []string
}

// Status returns the status recorded for id, or StatusNone.
func (r *Report) Status(id FileID) Status {
	for _, e := range r.Entries {
		if e.ID == id {
			return e.Status
		}
	}
	return StatusNone
}

// Materialize writes the scaffold for cfg into cfg.ProjectDir on fsys.
// Every file is attempted once, in AllFiles order; the first filesystem error
// aborts the run and files already written stay written.
func Materialize(fsys afero.Fs, cfg *options.ResolvedConfig) (*Report, error) {
	root := cfg.ProjectDir
	report := &Report{ProjectDir: root}

	for _, dir := range []string{"src", filepath.Join(".github", "workflows")} {
		if err := fsys.MkdirAll(filepath.Join(root, dir), dirPerm); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	targets := buildTargets(cfg, report)
	for _, id := range AllFiles {
		t, ok := targets[id]
		if !ok {
			report.Entries = append(report.Entries, Entry{ID: id, Path: id.Path(), Status: StatusNone})
			continue
		}
		status, err := writeTarget(fsys, root, t)
		if err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, Entry{ID: id, Path: id.Path(), Status: status})
	}

	return report, nil
}

// buildTargets returns the requested targets keyed by file. The test config
// is only present when the resolved config asks for Jest.
func buildTargets(cfg *options.ResolvedConfig, report *Report) map[FileID]target {
	data := &TemplateData{Name: cfg.Name, Label: cfg.ModuleSystem.Label()}
	badges := BadgeBlock(cfg.Name, cfg.Owner, cfg.Repo)

	targets := map[FileID]target{
		Manifest: {id: Manifest, render: func() ([]byte, error) {
			out, err := manifest.Render(manifest.NewPackageJSON(manifest.PackageInput{
				Name:       cfg.Name,
				Version:    cfg.Version,
				Type:       cfg.PackageType(),
				TestScript: cfg.TestScript(),
				NodeEngine: cfg.NodeEngine,
			}))
			if err != nil {
				return nil, err
			}
			report.Warnings = append(report.Warnings, validatePackage(out)...)
			return out, nil
		}},
		BuildConfig: {id: BuildConfig, render: func() ([]byte, error) {
			return manifest.Render(manifest.NewTSConfig(cfg.ModuleSystem == options.ESModule))
		}},
		IgnoreFile: {id: IgnoreFile, render: func() ([]byte, error) {
			return readTemplate("gitignore", data)
		}},
		CIWorkflow: {id: CIWorkflow, render: func() ([]byte, error) {
			return readTemplate("publish.yml", data)
		}},
		SeedSource: {id: SeedSource, render: func() ([]byte, error) {
			return readTemplate("cli.ts.tmpl", data)
		}},
		Documentation: {
			id: Documentation,
			render: func() ([]byte, error) {
				return []byte(NewReadme(cfg.Name, badges)), nil
			},
			merge: func(existing []byte) ([]byte, bool) {
				out, changed := InsertBadges(string(existing), badges)
				return []byte(out), changed
			},
		},
	}

	if cfg.UseJest {
		targets[TestConfig] = target{id: TestConfig, render: func() ([]byte, error) {
			return readTemplate("jest.config.cjs", data)
		}}
	}
	return targets
}

// validatePackage checks a rendered package.json and returns warnings.
func validatePackage(data []byte) []string {
	result, err := manifest.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("could not validate package.json: %v", err)}
	}
	var warnings []string
	for _, issue := range result.Issues {
		warnings = append(warnings, "package.json "+issue.String())
	}
	return warnings
}
