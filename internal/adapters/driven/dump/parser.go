package dump

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

// Tag names of the export schema, compared without namespace prefix.
const (
	tagPage     = "page"
	tagTitle    = "title"
	tagNS       = "ns"
	tagID       = "id"
	tagRevision = "revision"
	tagText     = "text"
)

// Depths in the element path at which page fields live.
const (
	pageDepth     = 2
	fieldDepth    = 3
	revisionDepth = 4
)

// page accumulates the fields of the page currently being parsed.
type page struct {
	id        int64
	idSet     bool
	title     string
	namespace int
	text      string
}

// reset prepares the accumulator for a new page.
func (p *page) reset() {
	*p = page{id: -1, namespace: -1}
}

// Parser emits main-namespace pages from a dump stream.
// It is not safe for concurrent use.
type Parser struct {
	decoder *xml.Decoder
	path    []string
	current page

	capturing bool
	chars     strings.Builder

	skipped int
}

// NewParser creates a parser reading XML from r.
func NewParser(r io.Reader) *Parser {
	p := &Parser{
		decoder: xml.NewDecoder(r),
		path:    make([]string, 0, 8),
	}
	p.current.reset()
	return p
}

// Next returns the next page whose namespace is the main namespace.
// Pages in other namespaces are consumed and counted, never returned.
// Returns io.EOF at the end of the dump.
func (p *Parser) Next() (*domain.PageRecord, error) {
	for {
		tok, err := p.decoder.Token()
		if errors.Is(err, io.EOF) {
			if len(p.path) > 0 {
				return nil, fmt.Errorf("%w: dump ends inside <%s>", domain.ErrMalformedSource, p.path[len(p.path)-1])
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedSource, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.start(t.Name.Local)
		case xml.CharData:
			if p.capturing {
				p.chars.Write(t)
			}
		case xml.EndElement:
			rec, err := p.end(t.Name.Local)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				return rec, nil
			}
		}
	}
}

// Skipped returns how many pages outside the main namespace were dropped.
func (p *Parser) Skipped() int {
	return p.skipped
}

// start pushes a tag and decides whether its text is needed.
func (p *Parser) start(name string) {
	p.path = append(p.path, name)
	depth := len(p.path)

	if depth == pageDepth && name == tagPage {
		p.current.reset()
	}

	p.capturing = p.wants(name, depth)
	if p.capturing {
		p.chars.Reset()
	}
}

// wants reports whether the text of the element just opened is a page field.
func (p *Parser) wants(name string, depth int) bool {
	switch depth {
	case fieldDepth:
		return name == tagTitle || name == tagNS || name == tagID
	case revisionDepth:
		return name == tagText && p.path[depth-2] == tagRevision
	default:
		return false
	}
}

// end applies a closing tag to the accumulator and pops it.
// It returns a record when a main-namespace page closes.
func (p *Parser) end(name string) (*domain.PageRecord, error) {
	depth := len(p.path)
	if depth == 0 {
		return nil, fmt.Errorf("%w: unexpected </%s>", domain.ErrMalformedSource, name)
	}
	parent := ""
	if depth >= 2 {
		parent = p.path[depth-2]
	}
	p.path = p.path[:depth-1]

	captured := p.capturing
	p.capturing = false

	switch depth {
	case pageDepth:
		if name != tagPage {
			return nil, nil
		}
		if p.current.namespace != domain.MainNamespace {
			p.skipped++
			return nil, nil
		}
		return &domain.PageRecord{
			ID:        p.current.id,
			Title:     p.current.title,
			Namespace: p.current.namespace,
			RawText:   p.current.text,
		}, nil

	case fieldDepth:
		if !captured {
			return nil, nil
		}
		return nil, p.field(name)

	case revisionDepth:
		if captured && name == tagText && parent == tagRevision {
			p.current.text = p.chars.String()
		}
	}
	return nil, nil
}

// field stores a page-level field from the captured text.
func (p *Parser) field(name string) error {
	text := p.chars.String()

	switch name {
	case tagTitle:
		p.current.title = strings.Join(strings.Fields(text), " ")
	case tagNS:
		ns, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("%w: <ns> %q is not an integer", domain.ErrMalformedSource, text)
		}
		p.current.namespace = ns
	case tagID:
		// The first id of a page is its own; later ones must not replace it.
		if p.current.idSet {
			return nil
		}
		id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: <id> %q is not an integer", domain.ErrMalformedSource, text)
		}
		p.current.id = id
		p.current.idSet = true
	}
	return nil
}
