package minrss

// Category is the item category in one of two forms: a single plain text
// value, or a list of pre-built category elements. The zero value means no
// category at all.
type Category struct {
	text  string
	elems []*CategoryElement
}

// CategoryText returns the plain-text form: one category child with the
// given text and no domain attribute.
func CategoryText(text string) Category {
	return Category{text: text}
}

// Categories returns the pre-built form. The elements are appended to the
// item in the order given.
func Categories(elems ...*CategoryElement) Category {
	return Category{elems: elems}
}

// Item describes one feed story. At least one of Title and Description
// must be set; every other field is optional. Enclosure, GUID and Source
// are pre-built elements and are adopted into the item when present.
type Item struct {
	Title       string
	Link        string
	Description string
	Author      string
	Category    Category
	Comments    string
	Enclosure   *EnclosureElement
	GUID        *GUIDElement
	Source      *SourceElement
	PubDate     string
}

// Item builds an item element. Pre-built children come first (category
// elements, then enclosure, guid, source), followed by the scalar fields
// in declaration order.
func (g *Generator) Item(it Item) (*ItemElement, error) {
	if it.Title == "" && it.Description == "" {
		return nil, &ValidationError{Msg: "Either title or description must be set."}
	}

	item := g.tree.CreateElement("item")

	for _, c := range it.Category.elems {
		g.tree.AppendChild(item, c.node)
	}
	if it.Enclosure != nil {
		g.tree.AppendChild(item, it.Enclosure.node)
	}
	if it.GUID != nil {
		g.tree.AppendChild(item, it.GUID.node)
	}
	if it.Source != nil {
		g.tree.AppendChild(item, it.Source.node)
	}

	g.addTextFields(item, []field{
		{name: "title", value: it.Title},
		{name: "link", value: it.Link},
		{name: "description", value: it.Description},
		{name: "author", value: it.Author},
		{name: "category", value: it.Category.text},
		{name: "comments", value: it.Comments},
		{name: "pubDate", value: it.PubDate},
	})

	return &ItemElement{node: item}, nil
}

// ItemElement is a built item, ready to be collected into a Channel.
type ItemElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *ItemElement) Node() Node { return e.node }
