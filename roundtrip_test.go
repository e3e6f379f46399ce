package minrss_test

import (
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minrss "github.com/nwalsh1995/min-rss-gen"
	"github.com/nwalsh1995/min-rss-gen/xmltree"
)

// Builds a complete feed, serializes it, and feeds the bytes to a real RSS
// parser to make sure actual readers see the same structure we built.
func TestGofeedRoundTrip(t *testing.T) {
	g := newGen()

	enc, err := g.Enclosure("http://example.com/ep1.mp3", 2048, "audio/mpeg")
	require.NoError(t, err)
	guid, err := g.GUID("http://example.com/posts/1")
	require.NoError(t, err)
	tech, err := g.Category("tech", "")
	require.NoError(t, err)
	golang, err := g.Category("go", "http://example.com/tags")
	require.NoError(t, err)

	first, err := g.Item(minrss.Item{
		Title:     "First post",
		Link:      "http://example.com/posts/1",
		Category:  minrss.Categories(tech, golang),
		Enclosure: enc,
		GUID:      guid,
		PubDate:   "Mon, 02 Jan 2006 15:04:05 GMT",
	})
	require.NoError(t, err)

	second, err := g.Item(minrss.Item{
		Description: "A post with only a description",
		Category:    minrss.CategoryText("misc"),
	})
	require.NoError(t, err)

	img, err := g.Image(minrss.Image{
		URL:   "http://example.com/logo.png",
		Title: "Example",
		Link:  "http://example.com",
		Width: 200, // clamped to 144 on the wire
	})
	require.NoError(t, err)

	root, err := g.RSS(minrss.Channel{
		Title:       "Example Feed",
		Link:        "http://example.com",
		Description: "An example feed",
		Language:    "en-us",
		Generator:   "min-rss-gen",
		TTL:         60,
		Image:       img,
		Items:       []*minrss.ItemElement{first, second},
	})
	require.NoError(t, err)

	out, err := xmltree.Marshal(root)
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err, "parse generated feed")

	assert.Equal(t, "Example Feed", feed.Title)
	assert.Equal(t, "http://example.com", feed.Link)
	assert.Equal(t, "An example feed", feed.Description)
	assert.Equal(t, "en-us", feed.Language)
	require.NotNil(t, feed.Image)
	assert.Equal(t, "http://example.com/logo.png", feed.Image.URL)

	require.Len(t, feed.Items, 2)

	assert.Equal(t, "First post", feed.Items[0].Title)
	assert.Equal(t, "http://example.com/posts/1", feed.Items[0].GUID)
	assert.Equal(t, []string{"tech", "go"}, feed.Items[0].Categories)
	require.Len(t, feed.Items[0].Enclosures, 1)
	assert.Equal(t, "http://example.com/ep1.mp3", feed.Items[0].Enclosures[0].URL)
	assert.Equal(t, "2048", feed.Items[0].Enclosures[0].Length)
	assert.Equal(t, "audio/mpeg", feed.Items[0].Enclosures[0].Type)
	require.NotNil(t, feed.Items[0].PublishedParsed)

	assert.Empty(t, feed.Items[1].Title)
	assert.Equal(t, "A post with only a description", feed.Items[1].Description)
	assert.Equal(t, []string{"misc"}, feed.Items[1].Categories)
}
