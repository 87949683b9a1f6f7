// Package render turns fetched articles into displayable views.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"article_studio/internal/domain"
)

const (
	wrapperOpen     = "```markdown"
	wrapperClose    = "```"
	wrapperOpenNL   = wrapperOpen + "\n"
	wrapperCloseNL  = "\n" + wrapperClose
	untitledArticle = "article"
)

type Mode int

const (
	ModePlain Mode = iota
	ModeMarkup
)

func (m Mode) String() string {
	if m == ModeMarkup {
		return "markup"
	}
	return "plain"
}

// ModeFor selects markup rendering for .md files and preformatted text otherwise.
func ModeFor(filename string) Mode {
	if domain.FormatFor(filename) == domain.FormatMarkup {
		return ModeMarkup
	}
	return ModePlain
}

// StripWrapper removes a ```markdown fence that wraps the whole document.
// Only the outermost prefix and suffix are inspected; interior fences are kept.
func StripWrapper(content string) string {
	// The opener's newline may double as the closer's: "```markdown\n```" is empty.
	if len(content) >= len(wrapperOpenNL)+len(wrapperClose) &&
		strings.HasPrefix(content, wrapperOpenNL) && strings.HasSuffix(content, wrapperCloseNL) {
		end := max(len(content)-len(wrapperCloseNL), len(wrapperOpenNL))
		return content[len(wrapperOpenNL):end]
	}
	if len(content) >= len(wrapperOpen)+len(wrapperClose) &&
		strings.HasPrefix(content, wrapperOpen) && strings.HasSuffix(content, wrapperClose) {
		return content[len(wrapperOpen) : len(content)-len(wrapperClose)]
	}
	return content
}

// View is a rendered article. Raw is the stripped source text.
type View struct {
	Filename string
	Mode     Mode
	Raw      string
	HTML     string
}

type Renderer struct {
	md goldmark.Markdown
}

// New builds a renderer with GitHub-flavoured Markdown extensions.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (r *Renderer) Render(filename, content string) (View, error) {
	raw := StripWrapper(content)
	view := View{
		Filename: filename,
		Mode:     ModeFor(filename),
		Raw:      raw,
	}

	if view.Mode == ModePlain {
		view.HTML = "<pre>" + html.EscapeString(raw) + "</pre>"
		return view, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(raw), &buf); err != nil {
		return View{}, fmt.Errorf("render markdown %s: %w", filename, err)
	}
	view.HTML = buf.String()
	return view, nil
}

// RenderArtifact is Render for a fetched artifact.
func (r *Renderer) RenderArtifact(a *domain.Artifact) (View, error) {
	return r.Render(a.Filename, a.Content)
}

// DerivedFilename names a download for an article that has no filename yet:
// article_<topic with underscores>.txt.
func DerivedFilename(topic string) string {
	name := strings.Join(strings.Fields(topic), "_")
	if name == "" {
		return untitledArticle + ".txt"
	}
	return untitledArticle + "_" + name + ".txt"
}
