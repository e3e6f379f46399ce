// Package htmltree is an alternate tree backend over golang.org/x/net/html
// nodes, for callers that already work with html.Node trees. It proves the
// builder core is decoupled from any concrete tree type.
package htmltree

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html"

	minrss "github.com/nwalsh1995/min-rss-gen"
)

// Builder implements the minrss tree capability over *html.Node.
type Builder struct{}

// CreateElement implements minrss.Tree.
func (Builder) CreateElement(tag string, attrs ...minrss.Attr) minrss.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}

	return n
}

// AppendChild implements minrss.Tree.
func (Builder) AppendChild(parent, child minrss.Node) {
	mustNode(parent).AppendChild(mustNode(child))
}

// SetText implements minrss.Tree. Text becomes a text node appended to n.
func (Builder) SetText(n minrss.Node, text string) {
	mustNode(n).AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

var _ minrss.Tree = Builder{}

func mustNode(n minrss.Node) *html.Node {
	hn, ok := n.(*html.Node)
	if !ok {
		panic(fmt.Sprintf("htmltree: node %T was not created by this backend", n))
	}
	return hn
}

// Render writes the tree rooted at root to w as XML. html.Render is not
// used: it applies HTML void-element rules to tags like link and source
// and refuses their text children, which RSS markup needs.
func Render(w io.Writer, root minrss.Node) error {
	n := mustNode(root)
	enc := xml.NewEncoder(w)
	if err := renderNode(enc, n); err != nil {
		return fmt.Errorf("render %s: %s", n.Data, err)
	}

	return enc.Flush()
}

func renderNode(enc *xml.Encoder, n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		return enc.EncodeToken(xml.CharData(n.Data))
	case html.ElementNode:
		// handled below
	default:
		return fmt.Errorf("unexpected node type %d", n.Type)
	}

	start := xml.StartElement{Name: xml.Name{Local: n.Data}}
	for _, a := range n.Attr {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Key},
			Value: a.Val,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := renderNode(enc, c); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
