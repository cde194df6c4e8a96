package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
	"github.com/thegreatbey/strange-lil-scaffold/internal/options"
)

// FileDiff is the line diff of one file a materialization would change.
type FileDiff struct {
	Path   string
	Status Status
	Text   string
}

// Preview materializes cfg into an in-memory overlay on top of base and
// returns the report plus a line diff for every created or edited file.
// base is never written.
func Preview(base afero.Fs, cfg *options.ResolvedConfig) (*Report, []FileDiff, error) {
	overlay := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs())

	report, err := Materialize(overlay, cfg)
	if err != nil {
		return nil, nil, err
	}

	var diffs []FileDiff
	for _, e := range report.Entries {
		if e.Status != StatusCreated && e.Status != StatusOverwritten {
			continue
		}
		path := filepath.Join(cfg.ProjectDir, filepath.FromSlash(e.Path))

		before, err := afero.ReadFile(base, path)
		if err != nil && !os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("reading %s: %w", e.Path, err)
		}
		after, err := afero.ReadFile(overlay, path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading preview of %s: %w", e.Path, err)
		}

		diffs = append(diffs, FileDiff{
			Path:   e.Path,
			Status: e.Status,
			Text:   LineDiff(string(before), string(after)),
		})
	}
	return report, diffs, nil
}

// LineDiff renders a line-oriented diff of before and after, prefixing
// inserted lines with "+ ", deleted lines with "- " and context with "  ".
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
