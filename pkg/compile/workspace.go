package compile

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/pgfplots/pkg/errors"
)

const (
	// JobName is the TeX job name and the base name of every staged file.
	JobName = "figure"

	// SourceExtension is the extension of the staged LaTeX source.
	SourceExtension = "tex"

	// sharedDirName is the scratch directory reused by ScratchShared.
	sharedDirName = "output"
)

// ScratchMode selects how scratch workspaces are allocated.
type ScratchMode int

const (
	// ScratchUnique allocates a new directory per compilation.
	ScratchUnique ScratchMode = iota
	// ScratchShared reuses <temp-root>/output, wiping it every time.
	ScratchShared
)

func (m ScratchMode) String() string {
	if m == ScratchShared {
		return "shared"
	}
	return "unique"
}

// ParseScratchMode converts "unique" or "shared" into a ScratchMode.
func ParseScratchMode(s string) (ScratchMode, error) {
	switch s {
	case "", "unique":
		return ScratchUnique, nil
	case "shared":
		return ScratchShared, nil
	}
	return ScratchUnique, errors.New(errors.ErrCodeInvalidInput, "invalid scratch mode: %s (must be 'unique' or 'shared')", s)
}

// sharedMu serializes ScratchShared compilations within this process.
var sharedMu sync.Mutex

// Workspace is the scratch directory of one compilation.
type Workspace struct {
	Dir string
}

// Source returns the path of the staged LaTeX source.
func (w *Workspace) Source() string {
	return w.File(SourceExtension)
}

// File returns <dir>/figure.<ext>.
func (w *Workspace) File(ext string) string {
	return filepath.Join(w.Dir, JobName+"."+ext)
}

// Remove deletes the workspace and everything in it.
func (w *Workspace) Remove() error {
	return os.RemoveAll(w.Dir)
}

// PrepareWorkspace creates an empty scratch directory below root.
//
// For ScratchShared any existing <root>/output is removed recursively first.
// Callers using ScratchShared concurrently must serialize themselves; the
// Runner does this for in-process callers.
func PrepareWorkspace(root string, mode ScratchMode) (*Workspace, error) {
	if root == "" {
		root = os.TempDir()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create temp root %s", root)
	}

	var dir string
	switch mode {
	case ScratchShared:
		dir = filepath.Join(root, sharedDirName)
		if err := os.RemoveAll(dir); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "clear scratch directory %s", dir)
		}
	default:
		dir = filepath.Join(root, sharedDirName+"-"+uuid.NewString())
	}

	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create scratch directory %s", dir)
	}
	return &Workspace{Dir: dir}, nil
}
