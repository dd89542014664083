// Package corpus loads raw document text from the filesystem. Documents
// are keyed by file path; extraction failures are logged and skipped so
// one bad file never aborts a crawl.
package corpus

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
)

// Provider walks a directory tree and extracts text from files of a
// single type ("txt" or "html").
type Provider struct {
	dir      string
	fileType string
	limit    int
	log      *log.Logger
}

// NewProvider creates a corpus provider rooted at dir. A limit of zero
// means no cap on the number of files loaded.
func NewProvider(dir, fileType string, limit int, logger *log.Logger) *Provider {
	if fileType == "" {
		fileType = "txt"
	}
	return &Provider{dir: dir, fileType: fileType, limit: limit, log: logger}
}

// Load walks the corpus directory and returns file path -> extracted
// text for every matching file. Unreadable or unparsable files are
// logged and skipped.
func (p *Provider) Load() (map[string]string, error) {
	docs := make(map[string]string)
	err := filepath.WalkDir(p.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, "."+p.fileType) {
			return nil
		}
		if p.limit > 0 && len(docs) >= p.limit {
			return fs.SkipAll
		}
		content, err := p.extract(path)
		if err != nil {
			p.log.Warn("skipping document", "path", path, "err", err)
			return nil
		}
		docs[path] = content
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (p *Provider) extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if p.fileType == "html" {
		return paragraphText(bytes.NewReader(data))
	}
	return string(data), nil
}

// paragraphText returns the concatenated text content of all <p>
// elements. Markup outside paragraphs (navigation, scripts, headers)
// does not enter the corpus.
func paragraphText(r io.Reader) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	var walk func(n *html.Node, inParagraph bool)
	walk = func(n *html.Node, inParagraph bool) {
		if n.Type == html.ElementNode && n.Data == "p" {
			inParagraph = true
		}
		if n.Type == html.TextNode && inParagraph {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inParagraph)
		}
	}
	walk(root, false)
	return b.String(), nil
}
