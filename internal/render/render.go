// Package render turns a project's markdown readme template into the
// HTML instructions shipped alongside a compiled package.
package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"os"
	textTemplate "text/template"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"github.com/russross/blackfriday"
)

//go:embed templates/overview.md
var OverviewTemplate string

//go:embed templates/page.html
var pageTemplateSrc string

// Peer is one other recipient mentioned in a rendered readme.
type Peer struct {
	Name string
}

// InstructionModel carries the values substituted into a readme template.
type InstructionModel struct {
	Owner      string
	Recipient  string
	Passphrase string
	Peers      []Peer
}

type pageModel struct {
	Body template.HTML
}

// Instructions substitutes model into the markdown at mdTemplatePath,
// converts the result to HTML, wraps it in a standalone page, and writes
// it to destPath.
func Instructions(mdTemplatePath string, model InstructionModel, destPath string) error {
	mdTemplateText, err := os.ReadFile(mdTemplatePath)
	if err != nil {
		return kinerrors.NewPathError("read", mdTemplatePath, err)
	}

	md, err := renderMarkdown(string(mdTemplateText), model)
	if err != nil {
		return err
	}

	return renderHTML(md, destPath)
}

func renderMarkdown(mdTemplateText string, model InstructionModel) (string, error) {
	tmpl, err := textTemplate.New("readme").Parse(mdTemplateText)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderHTML(markdown string, destPath string) error {
	body := blackfriday.MarkdownCommon([]byte(markdown))

	pageTemplate, err := template.New("page").Parse(pageTemplateSrc)
	if err != nil {
		return err
	}

	out, err := os.Create(destPath)
	if err != nil {
		return kinerrors.NewPathError("create", destPath, err)
	}
	defer out.Close()

	if err := pageTemplate.Execute(out, pageModel{Body: template.HTML(body)}); err != nil {
		return kinerrors.NewPathError("render", destPath, err)
	}
	return nil
}
