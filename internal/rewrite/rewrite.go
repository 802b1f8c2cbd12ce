package rewrite

import (
	"fmt"
	"io"
	"strings"

	"github.com/PanchamBro/mediawiki-projects-list/internal/resolver"
	"golang.org/x/net/html"
)

// Document reads an HTML document from r, rewrites the href of every
// root-relative anchor through fix, and renders the result to w.
// pagelink is the absolute URL of the page the document was fetched from;
// the fixer derives the stripped path prefix from it.
//
// We parse into a node tree rather than patching with regex because
// x/net/html tolerates the malformed markup real wikis serve and
// guarantees attribute-safe serialization on the way back out.
func Document(w io.Writer, r io.Reader, fix resolver.Fixer, pagelink string) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	rewriteAnchors(doc, fix, pagelink)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// rewriteAnchors walks the node tree and fixes relative anchor targets.
func rewriteAnchors(n *html.Node, fix resolver.Fixer, pagelink string) {
	if n.Type == html.ElementNode && n.Data == "a" {
		for i, attr := range n.Attr {
			if attr.Key == "href" && isRootRelative(attr.Val) {
				n.Attr[i].Val = fix(attr.Val, pagelink)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteAnchors(c, fix, pagelink)
	}
}

// isRootRelative reports whether href is a root-relative path.
// Protocol-relative targets ("//host/...") keep their own authority and
// must not be touched.
func isRootRelative(href string) bool {
	return strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//")
}
