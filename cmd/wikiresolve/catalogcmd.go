package main

import (
	"fmt"

	"github.com/PanchamBro/mediawiki-projects-list/internal/catalog"
	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate the catalog",
		Long: `Catalog loads the selected catalog (validating every pattern and template
in the process) and lists its entries in priority order.

Examples:
  # List the embedded default catalog
  wikiresolve catalog

  # Validate and list a custom catalog as Markdown
  wikiresolve catalog --catalog ./wikiprojects.yaml --markdown`,
		RunE: runCatalogCmd,
	}

	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown tables")

	return cmd
}

// runCatalogCmd executes the catalog command.
func runCatalogCmd(cmd *cobra.Command, _ []string) error {
	markdownOut, _ := cmd.Flags().GetBool("markdown")

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	if markdownOut {
		return writeCatalogMarkdown(cmd, cat)
	}
	return writeCatalogText(cmd, cat)
}

// writeCatalogText lists catalog entries in plain text.
func writeCatalogText(cmd *cobra.Command, cat *catalog.Catalog) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "wiki projects (%d):\n", len(cat.Projects))
	for _, p := range cat.Projects {
		idMark := ""
		if p.IDString != nil {
			idMark = " [id-string]"
		}
		fmt.Fprintf(out, "  %-24s %-10s article=%s script=%s%s\n",
			p.Name, p.WikiFarm, p.ArticlePath, p.ScriptPath, idMark)
	}

	fmt.Fprintf(out, "frontend proxies (%d):\n", len(cat.Proxies))
	for _, p := range cat.Proxies {
		fmt.Fprintf(out, "  %-24s name=%s\n", p.Name, p.NamePath)
	}
	return nil
}

// writeCatalogMarkdown lists catalog entries as Markdown tables.
func writeCatalogMarkdown(cmd *cobra.Command, cat *catalog.Catalog) error {
	md := markdown.NewMarkdown(cmd.OutOrStdout())

	md.H1("Wiki Catalog")
	md.PlainText("")

	projectRows := make([][]string, 0, len(cat.Projects))
	for _, p := range cat.Projects {
		id := "no"
		if p.IDString != nil {
			id = "yes"
		}
		projectRows = append(projectRows, []string{
			p.Name, p.WikiFarm.String(), p.ArticlePath, p.ScriptPath, id,
		})
	}
	md.H2("Wiki Projects")
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Farm", "Article Path", "Script Path", "ID String"},
		Rows:   projectRows,
	})
	md.PlainText("")

	proxyRows := make([][]string, 0, len(cat.Proxies))
	for _, p := range cat.Proxies {
		proxyRows = append(proxyRows, []string{p.Name, p.NamePath, p.ScriptPath})
	}
	md.H2("Frontend Proxies")
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Name Path", "Script Path"},
		Rows:   proxyRows,
	})

	return md.Build()
}
