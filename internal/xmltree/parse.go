package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Mode selects how Parse treats malformed markup.
type Mode int

const (
	// Strict aborts on the first syntax error.
	Strict Mode = iota
	// Recover tolerates unknown entities, mismatched or missing end tags,
	// stray '<', invalid UTF-8 and illegal control characters. A document
	// cut off mid-way keeps everything parsed before the cut.
	Recover
)

func (m Mode) String() string {
	if m == Recover {
		return "recover"
	}
	return "strict"
}

// ErrNoRoot is returned when the input holds no element at all.
var ErrNoRoot = errors.New("no root element")

type frame struct {
	node *Node
	text strings.Builder
}

// Parse reads a whole XML document into a tree and returns its root element.
func Parse(r io.Reader, mode Mode) (*Node, error) {
	if mode == Recover {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(repair(data))
	}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if mode == Recover {
		dec.Strict = false
	}

	var (
		root  *Node
		stack []*frame
	)
	closeTop := func() {
		top := stack[len(stack)-1]
		top.node.text = top.text.String()
		stack = stack[:len(stack)-1]
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if mode == Recover && root != nil {
				break
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1].node
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			} else {
				// Trailing top-level elements are ignored.
				continue
			}
			stack = append(stack, &frame{node: n})
		case xml.EndElement:
			if len(stack) > 0 {
				closeTop()
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	for len(stack) > 0 {
		closeTop()
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
