package compile

import (
	"os"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"github.com/matzehuels/pgfplots/pkg/errors"
)

// verifyArtifact checks that path exists and is non-empty.
func verifyArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeArtifactMissing, err, "no artifact at %s", path)
	}
	if info.IsDir() || info.Size() == 0 {
		return errors.New(errors.ErrCodeArtifactMissing, "artifact %s is empty", path)
	}
	return nil
}

// ValidatePDF checks that path parses as a PDF with at least one page.
func ValidatePDF(path string) error {
	r, err := pdf.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArtifact, err, "parse %s", path)
	}
	defer r.Close()

	pages, err := pagetree.FindPages(r)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArtifact, err, "read page tree of %s", path)
	}
	if len(pages) == 0 {
		return errors.New(errors.ErrCodeInvalidArtifact, "%s has no pages", path)
	}
	return nil
}
