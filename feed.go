package minrss

import "strconv"

// Channel describes the feed's channel element. Title, Link and
// Description are required; everything else is optional and omitted when
// left at its zero value. TTL is in minutes. Cloud, Image and TextInput
// are pre-built elements; Items are appended to the channel in order,
// after all metadata.
type Channel struct {
	Title       string
	Link        string
	Description string

	Language       string
	Copyright      string
	ManagingEditor string
	WebMaster      string
	PubDate        string
	LastBuildDate  string
	Category       string
	Generator      string
	Docs           string
	TTL            int
	SkipHours      string
	SkipDays       string

	Cloud     *CloudElement
	Image     *ImageElement
	TextInput *TextInputElement

	Items []*ItemElement
}

// RSS builds the whole document: an rss root with version="2.0" holding a
// single channel child. Within the channel, pre-built cloud, textInput and
// image come first (in that order), then the required title, link and
// description, then the optional scalar metadata, then the items. The
// returned node is the rss root, ready for the backend to serialize.
func (g *Generator) RSS(ch Channel) (Node, error) {
	err := requireAll("channel", []field{
		{name: "title", value: ch.Title},
		{name: "link", value: ch.Link},
		{name: "description", value: ch.Description},
	})
	if err != nil {
		return nil, err
	}

	rss := g.tree.CreateElement("rss", Attr{Name: "version", Value: "2.0"})
	channel := g.tree.CreateElement("channel")
	g.tree.AppendChild(rss, channel)

	if ch.Cloud != nil {
		g.tree.AppendChild(channel, ch.Cloud.node)
	}
	if ch.TextInput != nil {
		g.tree.AppendChild(channel, ch.TextInput.node)
	}
	if ch.Image != nil {
		g.tree.AppendChild(channel, ch.Image.node)
	}

	g.addTextChild(channel, "title", ch.Title)
	g.addTextChild(channel, "link", ch.Link)
	g.addTextChild(channel, "description", ch.Description)

	ttl := ""
	if ch.TTL > 0 {
		ttl = strconv.Itoa(ch.TTL)
	}
	g.addTextFields(channel, []field{
		{name: "language", value: ch.Language},
		{name: "copyright", value: ch.Copyright},
		{name: "managingEditor", value: ch.ManagingEditor},
		{name: "webMaster", value: ch.WebMaster},
		{name: "pubDate", value: ch.PubDate},
		{name: "lastBuildDate", value: ch.LastBuildDate},
		{name: "category", value: ch.Category},
		{name: "generator", value: ch.Generator},
		{name: "docs", value: ch.Docs},
		{name: "ttl", value: ttl},
		{name: "skipHours", value: ch.SkipHours},
		{name: "skipDays", value: ch.SkipDays},
	})

	for _, it := range ch.Items {
		g.tree.AppendChild(channel, it.node)
	}

	return rss, nil
}
