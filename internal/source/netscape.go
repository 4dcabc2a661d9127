package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mkbrn/rewind/internal/model"
)

// NetscapeSource reads a Netscape bookmark HTML export, the lingua franca
// format every browser can produce.
type NetscapeSource struct {
	Path string
}

// Name implements Source.
func (s NetscapeSource) Name() string {
	return "html export (" + s.Path + ")"
}

// Load implements Source.
func (s NetscapeSource) Load(ctx context.Context) ([]model.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening bookmark export: %w", err)
	}
	defer f.Close()

	roots, err := ParseNetscape(f)
	if err != nil {
		return nil, fmt.Errorf("parsing bookmark export: %w", err)
	}
	return Flatten(roots), nil
}

// ParseNetscape parses Netscape bookmark HTML into a node forest. Folders
// are H3 headers whose contents follow in the next DL; bookmarks are A tags
// with an HREF and an ADD_DATE unix timestamp.
func ParseNetscape(r io.Reader) ([]Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	root := &Node{}
	// Stack of folders under construction; appends go to the top. A folder
	// is attached to its parent once its DL closes, so its subtree is
	// complete before the parent's slice grows again.
	stack := []*Node{root}
	var pendingFolder *Node

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				pendingFolder = &Node{Title: textContent(n)}
				return

			case "a":
				href := attr(n, "href")
				if href == "" {
					return
				}

				node := Node{
					Title: textContent(n),
					URL:   href,
				}
				if addDate := attr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil && ts > 0 {
						node.Added = time.Unix(ts, 0)
					}
				}

				top := stack[len(stack)-1]
				top.Children = append(top.Children, node)
				return

			case "dl":
				// A DL opens the contents of the folder declared just before.
				var folder *Node
				if pendingFolder != nil {
					folder = pendingFolder
					pendingFolder = nil
					stack = append(stack, folder)
				}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}
				if folder != nil {
					stack = stack[:len(stack)-1]
					top := stack[len(stack)-1]
					top.Children = append(top.Children, *folder)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return root.Children, nil
}

// textContent returns the trimmed text inside a node.
func textContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// attr returns an attribute value, case-insensitive on the key.
func attr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			return a.Val
		}
	}
	return ""
}
