package render

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/user/logview/internal/source"
)

// SyntaxRenderer applies syntax highlighting based on file type.
// Useful when viewing structured files (yaml, json, ini) with the
// same navigation engine.
type SyntaxRenderer struct {
	filename    string
	lexerName   string
	syntaxTheme string
}

// NewSyntaxRenderer creates a syntax highlighting renderer for the given filename
func NewSyntaxRenderer(filename string) *SyntaxRenderer {
	lexer := lexers.Match(filename)
	lexerName := "plaintext"
	if lexer != nil {
		lexerName = lexer.Config().Name
	}

	return &SyntaxRenderer{
		filename:    filename,
		lexerName:   lexerName,
		syntaxTheme: "monokai",
	}
}

// IsHighlightable returns true if a lexer matched the filename
func (r *SyntaxRenderer) IsHighlightable() bool {
	return r.lexerName != "plaintext"
}

// Render applies syntax highlighting to a line
func (r *SyntaxRenderer) Render(line *source.Line) string {
	content := string(line.Content)
	if content == "" {
		return ""
	}

	var buf bytes.Buffer
	err := quick.Highlight(&buf, content, r.lexerName, "terminal16m", r.syntaxTheme)
	if err != nil {
		return content
	}

	// quick.Highlight appends newlines; we render one line at a time
	highlighted := buf.String()
	highlighted = strings.ReplaceAll(highlighted, "\n", "")
	highlighted = strings.ReplaceAll(highlighted, "\r", "")
	return highlighted
}
