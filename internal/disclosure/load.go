// Package disclosure classifies House and Senate lobbying disclosure XML and
// extracts flat entity values from it.
package disclosure

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jjenkins/lobbying/internal/xmltree"
)

// Kind identifies a recognised document family.
type Kind int

const (
	Unknown Kind = iota
	HouseRegistration
	HouseReport
	SenateFilings
)

var kindNames = map[Kind]string{
	Unknown:           "unknown",
	HouseRegistration: "house-registration",
	HouseReport:       "house-report",
	SenateFilings:     "senate",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// ParseKind maps a family name as printed by Kind.String back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != Unknown && name == s {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("unknown document family %q", s)
}

// Kinds lists the recognised families in a stable order.
func Kinds() []Kind {
	return []Kind{HouseRegistration, HouseReport, SenateFilings}
}

// rootMarkers are matched as substrings of the root tag because some
// documents put the root element in a namespace.
var rootMarkers = []struct {
	marker string
	kind   Kind
}{
	{"LOBBYINGDISCLOSURE1", HouseRegistration},
	{"LOBBYINGDISCLOSURE2", HouseReport},
	{"PublicFilings", SenateFilings},
}

// parseModes holds the parser mode per family. House reports are routinely
// malformed and get the recovering parser; everything else is strict.
var parseModes = map[Kind]xmltree.Mode{
	HouseReport: xmltree.Recover,
}

// Mode returns the parser mode used for documents of kind k.
func (k Kind) Mode() xmltree.Mode {
	return parseModes[k]
}

func classify(tag string) Kind {
	for _, m := range rootMarkers {
		if strings.Contains(tag, m.marker) {
			return m.kind
		}
	}
	return Unknown
}

// Source is one document handed to the loader: an identifier plus a
// filesystem path, an in-memory buffer or an opener.
type Source struct {
	ID      string
	Path    string
	Content []byte
	Opener  func() (io.ReadCloser, error)
}

// FromPath returns a Source read lazily from path.
func FromPath(id, path string) Source {
	return Source{ID: id, Path: path}
}

// FromBytes returns a Source over content already in memory.
func FromBytes(id string, content []byte) Source {
	return Source{ID: id, Content: content}
}

// FromOpener returns a Source whose content is produced by open each time it
// is read, such as a member of an archive.
func FromOpener(id string, open func() (io.ReadCloser, error)) Source {
	return Source{ID: id, Opener: open}
}

func (s Source) open() (io.ReadCloser, error) {
	if s.Opener != nil {
		return s.Opener()
	}
	if s.Content == nil && s.Path != "" {
		return os.Open(s.Path)
	}
	return io.NopCloser(bytes.NewReader(s.Content)), nil
}

func (s Source) parse(mode xmltree.Mode) (*xmltree.Node, error) {
	r, err := s.open()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer r.Close()

	root, err := xmltree.Parse(r, mode)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return root, nil
}

// Document is a parsed, classified disclosure document.
type Document struct {
	Kind Kind
	ID   string
	root *xmltree.Node
}

// Root returns the document's root element.
func (d *Document) Root() *xmltree.Node {
	return d.root
}

// Load parses src with the parser mode of want and checks that its root
// element is a want document. It fails with *ParseError or
// *ClassificationError; neither leaves a partially loaded document behind.
func Load(src Source, want Kind) (*Document, error) {
	root, err := src.parse(want.Mode())
	if err != nil {
		return nil, err
	}

	tag := root.Tag()
	if kind := classify(tag); kind == Unknown || kind != want {
		return nil, &ClassificationError{Tag: tag, Want: want}
	}

	return &Document{Kind: want, ID: src.ID, root: root}, nil
}

// Classify reports the family of src without extracting anything. Content
// that only parses in recovering mode is still classified.
func Classify(src Source) (Kind, error) {
	root, err := src.parse(xmltree.Strict)
	if err != nil {
		var recErr error
		root, recErr = src.parse(xmltree.Recover)
		if recErr != nil {
			return Unknown, err
		}
	}

	tag := root.Tag()
	kind := classify(tag)
	if kind == Unknown {
		return Unknown, &ClassificationError{Tag: tag}
	}
	return kind, nil
}
