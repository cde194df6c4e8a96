package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// target describes how to produce one scaffold file.
type target struct {
	id FileID
	// render returns the content of a freshly created file.
	render func() ([]byte, error)
	// merge returns the edited content of an existing file and whether it
	// changed. Only used by CreateOrMerge.
	merge func(existing []byte) ([]byte, bool)
}

// writeTarget applies the file's strategy under root and returns its status.
func writeTarget(fsys afero.Fs, root string, t target) (Status, error) {
	path := filepath.Join(root, filepath.FromSlash(t.id.Path()))
	if err := fsys.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", t.id.Path(), err)
	}

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", t.id.Path(), err)
	}

	if !exists {
		data, err := t.render()
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", t.id.Path(), err)
		}
		if err := afero.WriteFile(fsys, path, data, filePerm); err != nil {
			return "", fmt.Errorf("writing %s: %w", t.id.Path(), err)
		}
		return StatusCreated, nil
	}

	switch StrategyFor(t.id) {
	case CreateOnly:
		return StatusUnchanged, nil
	case CreateOrSkip:
		return StatusSkipped, nil
	}

	existing, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", t.id.Path(), err)
	}
	merged, changed := t.merge(existing)
	if !changed {
		return StatusUnchanged, nil
	}
	if err := writeFileAtomic(fsys, path, merged, filePerm); err != nil {
		return "", fmt.Errorf("updating %s: %w", t.id.Path(), err)
	}
	return StatusOverwritten, nil
}

// writeFileAtomic writes data to path using a temp file + rename in the same
// directory, so an interrupted write leaves the original content in place.
func writeFileAtomic(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	f, err := afero.TempFile(fsys, filepath.Dir(path), ".sls-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			fsys.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
