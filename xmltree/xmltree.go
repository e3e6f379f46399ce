// Package xmltree is the default tree backend: a plain in-memory element
// tree serialized through encoding/xml's token encoder.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	minrss "github.com/nwalsh1995/min-rss-gen"
)

// Element is one node of the tree. Fields are exported so tests can
// compare whole trees structurally.
type Element struct {
	Tag      string
	Attr     []minrss.Attr
	Text     string
	Children []*Element
}

// Builder implements the minrss tree capability over *Element nodes.
type Builder struct{}

// CreateElement implements minrss.Tree.
func (Builder) CreateElement(tag string, attrs ...minrss.Attr) minrss.Node {
	return &Element{Tag: tag, Attr: attrs}
}

// AppendChild implements minrss.Tree.
func (Builder) AppendChild(parent, child minrss.Node) {
	p := mustElement(parent)
	p.Children = append(p.Children, mustElement(child))
}

// SetText implements minrss.Tree.
func (Builder) SetText(n minrss.Node, text string) {
	mustElement(n).Text = text
}

var _ minrss.Tree = Builder{}

func mustElement(n minrss.Node) *Element {
	el, ok := n.(*Element)
	if !ok {
		panic(fmt.Sprintf("xmltree: node %T was not created by this backend", n))
	}
	return el
}

// Encode writes the tree rooted at root to w as XML. Attribute order is
// preserved; text content precedes child elements.
func Encode(w io.Writer, root minrss.Node) error {
	el := mustElement(root)
	enc := xml.NewEncoder(w)
	if err := encodeElement(enc, el); err != nil {
		return fmt.Errorf("encode %s: %s", el.Tag, err)
	}

	return enc.Flush()
}

func encodeElement(enc *xml.Encoder, el *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Tag}}
	for _, a := range el.Attr {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if el.Text != "" {
		if err := enc.EncodeToken(xml.CharData(el.Text)); err != nil {
			return err
		}
	}
	for _, child := range el.Children {
		if err := encodeElement(enc, child); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

// Marshal renders the tree rooted at root as an XML byte slice.
func Marshal(root minrss.Node) ([]byte, error) {
	var buff bytes.Buffer
	if err := Encode(&buff, root); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
