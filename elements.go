package minrss

import "strconv"

// RSS 2.0 caps image dimensions; larger requested values are clamped.
const (
	MaxImageWidth  = 144
	MaxImageHeight = 400
)

// CategoryElement is a built category tag for an item.
type CategoryElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *CategoryElement) Node() Node { return e.node }

// EnclosureElement is a built enclosure (attached media object).
type EnclosureElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *EnclosureElement) Node() Node { return e.node }

// GUIDElement is a built guid (unique item identifier).
type GUIDElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *GUIDElement) Node() Node { return e.node }

// SourceElement is a built source (originating channel reference).
type SourceElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *SourceElement) Node() Node { return e.node }

// CloudElement is a built cloud (pub-sub registration endpoint).
type CloudElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *CloudElement) Node() Node { return e.node }

// TextInputElement is a built textInput box descriptor.
type TextInputElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *TextInputElement) Node() Node { return e.node }

// ImageElement is a built channel image descriptor.
type ImageElement struct {
	node Node
}

// Node returns the underlying backend node.
func (e *ImageElement) Node() Node { return e.node }

// Category builds a category element with the given text. domain, when
// non-empty, identifies the taxonomy the category belongs to and is set
// as an attribute.
func (g *Generator) Category(category, domain string) (*CategoryElement, error) {
	if category == "" {
		return nil, validationErrorf("category: category text is required")
	}

	var attrs []Attr
	if domain != "" {
		attrs = append(attrs, Attr{Name: "domain", Value: domain})
	}

	el := g.tree.CreateElement("category", attrs...)
	g.tree.SetText(el, category)

	return &CategoryElement{node: el}, nil
}

// Enclosure builds an enclosure element. length is the object size in
// bytes and must be non-negative; mimeType is the object's MIME type.
func (g *Generator) Enclosure(url string, length int64, mimeType string) (*EnclosureElement, error) {
	err := requireAll("enclosure", []field{
		{name: "url", value: url},
		{name: "type", value: mimeType},
	})
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, validationErrorf("enclosure: length must be non-negative, got %d", length)
	}

	el := g.tree.CreateElement("enclosure",
		Attr{Name: "url", Value: url},
		Attr{Name: "length", Value: strconv.FormatInt(length, 10)},
		Attr{Name: "type", Value: mimeType},
	)

	return &EnclosureElement{node: el}, nil
}

// GUID builds a guid element marked as a permalink, the RSS 2.0 default.
func (g *Generator) GUID(guid string) (*GUIDElement, error) {
	return g.guid(guid, true)
}

// OpaqueGUID builds a guid element with isPermaLink="false", for
// identifiers that are not resolvable URLs.
func (g *Generator) OpaqueGUID(guid string) (*GUIDElement, error) {
	return g.guid(guid, false)
}

func (g *Generator) guid(guid string, isPermaLink bool) (*GUIDElement, error) {
	if guid == "" {
		return nil, validationErrorf("guid: guid is required")
	}

	el := g.tree.CreateElement("guid",
		Attr{Name: "isPermaLink", Value: strconv.FormatBool(isPermaLink)},
	)
	g.tree.SetText(el, guid)

	return &GUIDElement{node: el}, nil
}

// Source builds a source element: text is the originating channel's name,
// url points at that channel's own feed.
func (g *Generator) Source(text, url string) (*SourceElement, error) {
	err := requireAll("source", []field{
		{name: "text", value: text},
		{name: "url", value: url},
	})
	if err != nil {
		return nil, err
	}

	el := g.tree.CreateElement("source", Attr{Name: "url", Value: url})
	g.tree.SetText(el, text)

	return &SourceElement{node: el}, nil
}

// Cloud builds a cloud element describing a publish-subscribe endpoint.
// The mixed-case registerProcedure attribute name is part of the RSS 2.0
// wire format and is emitted exactly as RSS 2.0 writes it.
func (g *Generator) Cloud(domain string, port int, path, registerProcedure, protocol string) (*CloudElement, error) {
	err := requireAll("cloud", []field{
		{name: "domain", value: domain},
		{name: "path", value: path},
		{name: "registerProcedure", value: registerProcedure},
		{name: "protocol", value: protocol},
	})
	if err != nil {
		return nil, err
	}
	if port <= 0 {
		return nil, validationErrorf("cloud: port is required")
	}

	el := g.tree.CreateElement("cloud",
		Attr{Name: "domain", Value: domain},
		Attr{Name: "port", Value: strconv.Itoa(port)},
		Attr{Name: "path", Value: path},
		Attr{Name: "registerProcedure", Value: registerProcedure},
		Attr{Name: "protocol", Value: protocol},
	)

	return &CloudElement{node: el}, nil
}

// TextInput builds a textInput element. All four fields are required and
// emitted as text children in the order title, description, name, link.
func (g *Generator) TextInput(title, description, name, link string) (*TextInputElement, error) {
	fields := []field{
		{name: "title", value: title},
		{name: "description", value: description},
		{name: "name", value: name},
		{name: "link", value: link},
	}
	if err := requireAll("textInput", fields); err != nil {
		return nil, err
	}

	el := g.tree.CreateElement("textInput")
	g.addTextFields(el, fields)

	return &TextInputElement{node: el}, nil
}

// Image describes a channel image. URL, Title and Link are required.
// Width and Height are optional; zero means "not supplied" and the
// corresponding child is omitted entirely (readers assume 88 and 31).
type Image struct {
	URL    string
	Title  string
	Link   string
	Width  int
	Height int
}

// Image builds an image element. A supplied Width or Height above the
// RSS 2.0 maxima (144 and 400) is silently clamped to the maximum rather
// than rejected; callers that need the requested dimension preserved must
// stay within the limits.
func (g *Generator) Image(img Image) (*ImageElement, error) {
	err := requireAll("image", []field{
		{name: "url", value: img.URL},
		{name: "title", value: img.Title},
		{name: "link", value: img.Link},
	})
	if err != nil {
		return nil, err
	}

	el := g.tree.CreateElement("image")
	g.addTextChild(el, "url", img.URL)
	g.addTextChild(el, "title", img.Title)
	g.addTextChild(el, "link", img.Link)

	if img.Width > 0 {
		g.addTextChild(el, "width", strconv.Itoa(min(img.Width, MaxImageWidth)))
	}
	if img.Height > 0 {
		g.addTextChild(el, "height", strconv.Itoa(min(img.Height, MaxImageHeight)))
	}

	return &ImageElement{node: el}, nil
}
