package assets

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// BaseProvider supplies the deployment base path used for assets that are
// not routed to the CDN.
type BaseProvider interface {
	Base() string
}

// StaticBase is a base path injected at build time.
type StaticBase string

// Base returns the injected value, or "/" when it is empty.
func (b StaticBase) Base() string {
	if b == "" {
		return "/"
	}
	return string(b)
}

var (
	// /<segment>/assets/<...>.js
	nestedBundle = regexp.MustCompile(`^/([^/]+)/assets/.+\.js$`)
	// /assets/<...>.js
	rootBundle = regexp.MustCompile(`^/assets/.+\.js$`)
)

// DocumentOpener opens the HTML document that loads the site bundle.
type DocumentOpener func() (io.ReadCloser, error)

// FileDocument opens an index.html from disk.
func FileDocument(path string) DocumentOpener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// ScriptTagBase infers the deployed sub-path from the <script src> tags of
// the served document. When the document cannot be read or no bundle tag is
// found, the fallback provider's value is used.
type ScriptTagBase struct {
	open     DocumentOpener
	fallback BaseProvider

	once     sync.Once
	base     string
	detected bool
	err      error
}

// NewScriptTagBase creates a provider that reads the document at most once.
func NewScriptTagBase(open DocumentOpener, fallback BaseProvider) *ScriptTagBase {
	if fallback == nil {
		fallback = StaticBase("/")
	}
	return &ScriptTagBase{
		open:     open,
		fallback: fallback,
	}
}

// Base returns the detected base, or the fallback's.
func (s *ScriptTagBase) Base() string {
	s.once.Do(s.detect)
	if s.detected {
		return s.base
	}
	return s.fallback.Base()
}

// Detected reports whether a bundle script tag determined the base.
func (s *ScriptTagBase) Detected() bool {
	s.once.Do(s.detect)
	return s.detected
}

// Err returns the error hit while reading the document, if any.
func (s *ScriptTagBase) Err() error {
	s.once.Do(s.detect)
	return s.err
}

func (s *ScriptTagBase) detect() {
	if s.open == nil {
		return
	}

	rc, err := s.open()
	if err != nil {
		s.err = fmt.Errorf("failed to open document: %w", err)
		return
	}
	defer rc.Close()

	base, ok, err := DetectBase(rc)
	if err != nil {
		s.err = err
		return
	}
	s.base, s.detected = base, ok
}

// DetectBase scans an HTML document for the first script tag that loads a
// bundle from an assets/ directory and returns the base path it implies.
func DetectBase(r io.Reader) (string, bool, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse document: %w", err)
	}

	for _, src := range scriptSources(doc) {
		if base, ok := BaseFromScript(src); ok {
			return base, true, nil
		}
	}
	return "", false, nil
}

// BaseFromScript maps a single script src to a base path.
func BaseFromScript(src string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return "", false
	}

	if m := nestedBundle.FindStringSubmatch(u.Path); m != nil {
		return "/" + m[1] + "/", true
	}
	if rootBundle.MatchString(u.Path) {
		return "/", true
	}
	return "", false
}

func scriptSources(n *html.Node) []string {
	var sources []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			for _, attr := range n.Attr {
				if attr.Key == "src" && attr.Val != "" {
					sources = append(sources, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sources
}
