package report

import (
	"io"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs outcomes as GitHub Flavored Markdown tables,
// suitable for pasting into issues or documentation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// farmTitle renders a wiki farm as a display name.
var farmTitle = cases.Title(language.English)

// Write outputs the outcomes as Markdown.
func (w *MarkdownWriter) Write(outcomes []model.Outcome) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Resolution Report")
	md.PlainText("")

	w.writeProjects(md, outcomes)
	w.writeProxies(md, outcomes)
	w.writeUnmatched(md, outcomes)

	return len(md.String()), md.Build()
}

// writeProjects renders the table of project matches.
func (w *MarkdownWriter) writeProjects(md *markdown.Markdown, outcomes []model.Outcome) {
	var rows [][]string
	for _, o := range outcomes {
		if o.Project == nil {
			continue
		}
		farm := "-"
		if o.Project.WikiProject.WikiFarm != model.WikiFarmNone {
			farm = farmTitle.String(o.Project.WikiProject.WikiFarm.String())
		}
		id := o.IDString
		if id == "" {
			id = "-"
		}
		rows = append(rows, []string{
			o.Input,
			o.Project.WikiProject.Name,
			farm,
			o.Project.FullArticlePath,
			o.Project.FullScriptPath,
			id,
		})
	}
	if len(rows) == 0 {
		return
	}

	md.H2("Wiki Projects")
	md.Table(markdown.TableSet{
		Header: []string{"Input", "Project", "Farm", "Article Path", "Script Path", "ID String"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeProxies renders the table of frontend proxy matches.
func (w *MarkdownWriter) writeProxies(md *markdown.Markdown, outcomes []model.Outcome) {
	var rows [][]string
	for _, o := range outcomes {
		if o.Proxy == nil {
			continue
		}
		rows = append(rows, []string{
			o.Input,
			o.Proxy.FrontendProxy.Name,
			o.Proxy.FullNamePath,
			o.Proxy.FullArticlePath,
			o.Proxy.FullScriptPath,
		})
	}
	if len(rows) == 0 {
		return
	}

	md.H2("Frontend Proxies")
	md.Table(markdown.TableSet{
		Header: []string{"Input", "Proxy", "Name Path", "Article Path", "Script Path"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeUnmatched lists inputs that matched nothing, plus any errors.
func (w *MarkdownWriter) writeUnmatched(md *markdown.Markdown, outcomes []model.Outcome) {
	var lines []string
	for _, o := range outcomes {
		if o.Matched() {
			continue
		}
		line := o.Input
		if o.Err != "" {
			line += ": " + o.Err
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return
	}

	md.H2("Unmatched")
	md.BulletList(lines...)
	md.PlainText("")
}
