// Package htmltomarkdown converts extracted page content into the Markdown
// dialect of the directory document using JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/ocfl/ocfl"
)

// Ensure Converter implements ocfl.Converter at compile time.
var _ ocfl.Converter = (*Converter)(nil)

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert HTML to Markdown. Output uses
// ATX headings, "-" bullets, "**" bold and pipe tables, and every phone
// number is rewritten to the "(407) 836-9000" form.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", ocfl.Errorf(ocfl.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = strings.ReplaceAll(result, "\u00a0", " ")
	result = ocfl.NormalizePhones(result)
	result = blankLinesRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result) + "\n", nil
}
