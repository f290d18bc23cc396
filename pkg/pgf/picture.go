package pgf

import (
	"io"
	"strings"
)

// GroupScale is the group of [PictureScale].
const GroupScale Group = "scale"

// PictureScale scales the whole picture.
type PictureScale float64

func (PictureScale) Group() Group     { return GroupScale }
func (s PictureScale) String() string { return "scale=" + formatFloat(float64(s)) }
func (PictureScale) pictureKey()      {}

// Picture is a TikZ picture environment holding axes.
//
// It renders as:
//
//	\begin{tikzpicture}[
//		<key>,
//	]
//		<axis>
//	\end{tikzpicture}
type Picture struct {
	// Axes are rendered in order.
	Axes []Axis

	keys Keys[PictureKey]
}

// NewPicture creates an empty picture.
func NewPicture() *Picture {
	return &Picture{}
}

// AddKey adds a key, evicting any key of the same group.
func (p *Picture) AddKey(k PictureKey) {
	p.keys.Add(k)
}

// Keys returns a copy of the picture keys in order.
func (p *Picture) Keys() []PictureKey {
	return p.keys.List()
}

// String renders the tikzpicture environment.
func (p *Picture) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

// WriteTo writes the rendered picture to w.
func (p *Picture) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, p.String())
}

func (p *Picture) write(b *strings.Builder) {
	b.WriteString(`\begin{tikzpicture}`)
	writeOptions(b, depthPicture, p.keys.list)
	b.WriteByte('\n')
	for i := range p.Axes {
		p.Axes[i].write(b)
		b.WriteByte('\n')
	}
	b.WriteString(`\end{tikzpicture}`)
}

// Document preamble and closing around a standalone picture.
const (
	standalonePreamble = "\\documentclass{standalone}\n\\usepackage{pgfplots}\n\\begin{document}\n"
	standaloneClosing  = "\n\\end{document}"
)

// Standalone returns a complete LaTeX document containing only this picture.
//
// The text keeps the newlines and tabs used for readability. Consumers that
// take the document as a single line, such as embedded compilers, should
// collapse them first; the compile package does this before dispatch.
func (p *Picture) Standalone() string {
	var b strings.Builder
	b.WriteString(standalonePreamble)
	p.write(&b)
	b.WriteString(standaloneClosing)
	return b.String()
}
