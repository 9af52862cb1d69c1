package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is the text of one course page, as handed to the parser.
type Page struct {
	Id        string   `json:"id"`
	Fragments []string `json:"fragments"`
}

func collectText(node *html.Node, fragments *[]string) {
	if node == nil {
		return
	}
	switch node.Type {
	case html.TextNode:
		if text := strings.TrimSpace(node.Data); text != "" {
			*fragments = append(*fragments, text)
		}
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, fragments)
	}
}

// ExtractFragments returns the trimmed, non-empty text nodes under the first
// element matching selector, less skipHead leading and skipTail trailing
// fragments of page chrome.
func ExtractFragments(r io.Reader, selector string, skipHead, skipTail int) ([]string, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	entry := document.Find(selector).First()
	if entry.Length() == 0 {
		return nil, fmt.Errorf("no element matches '%v'", selector)
	}

	var fragments []string
	collectText(entry.Nodes[0], &fragments)

	if skipHead+skipTail >= len(fragments) {
		return []string{}, nil
	}
	return fragments[skipHead : len(fragments)-skipTail], nil
}

// CoursePage fetches one course page and extracts its fragments.
func (c *Client) CoursePage(ctx context.Context, courseId string) (Page, error) {
	body, err := c.get(ctx, c.Config.CourseUrl(courseId))
	if err != nil {
		return Page{}, err
	}

	fragments, err := ExtractFragments(bytes.NewReader(body), c.Config.FragmentSelector, c.Config.SkipHead, c.Config.SkipTail)
	if err != nil {
		return Page{}, fmt.Errorf("course %v: %w", courseId, err)
	}

	return Page{Id: courseId, Fragments: fragments}, nil
}

func WritePages(name string, pages []Page) error {
	if pages == nil {
		pages = []Page{}
	}
	content, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(name, content, 0o644)
}

func ReadPages(name string) ([]Page, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var pages []Page
	if err := json.Unmarshal(content, &pages); err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	return pages, nil
}
