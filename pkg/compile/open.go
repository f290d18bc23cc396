package compile

import (
	"io"

	"github.com/pkg/browser"
)

// Opener shows an artifact to the user.
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) error

func (f OpenerFunc) Open(path string) error { return f(path) }

// BrowserOpener hands the file to the platform's default application
// (xdg-open, open or start).
type BrowserOpener struct{}

func (BrowserOpener) Open(path string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenFile(path)
}
