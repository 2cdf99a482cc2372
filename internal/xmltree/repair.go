package xmltree

import (
	"bytes"
	"strings"
)

// repair rewrites the fragments encoding/xml cannot get past even in
// non-strict mode, so Recover keeps reading the rest of the document.
func repair(data []byte) []byte {
	data = stripControl(data)
	if declaresUTF8(data) {
		data = bytes.ToValidUTF8(data, []byte("\uFFFD"))
	}
	return escapeStrayLT(data)
}

// stripControl removes bytes below 0x20 that XML 1.0 forbids. Tab, newline
// and carriage return are kept. Working on bytes keeps this safe for any
// ASCII-compatible declared encoding.
func stripControl(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			continue
		}
		out = append(out, b)
	}
	return out
}

// declaresUTF8 reports whether the prolog names UTF-8 or no encoding at all.
func declaresUTF8(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		return true
	}
	end := bytes.Index(data, []byte("?>"))
	if end < 0 {
		return true
	}
	decl := string(data[:end])
	i := strings.Index(decl, "encoding")
	if i < 0 {
		return true
	}
	rest := strings.TrimLeft(decl[i+len("encoding"):], " \t\r\n=")
	rest = strings.Trim(rest, ` "'`)
	if j := strings.IndexAny(rest, ` "'`); j >= 0 {
		rest = rest[:j]
	}
	label := strings.ToLower(rest)
	return label == "utf-8" || label == "utf8"
}

var (
	commentOpen = []byte("<!--")
	cdataOpen   = []byte("<![CDATA[")
)

// escapeStrayLT turns every '<' that cannot start markup into "&lt;": one in
// text not followed by a name, '/', '?' or '!', and any '<' inside a quoted
// attribute value. Comments, CDATA sections, processing instructions and
// declarations are copied unchanged.
func escapeStrayLT(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	for i := 0; i < len(data); {
		if data[i] != '<' {
			out.WriteByte(data[i])
			i++
			continue
		}

		rest := data[i:]
		switch {
		case bytes.HasPrefix(rest, commentOpen):
			i += copyThrough(&out, rest, "-->")
		case bytes.HasPrefix(rest, cdataOpen):
			i += copyThrough(&out, rest, "]]>")
		case len(rest) > 1 && rest[1] == '?':
			i += copyThrough(&out, rest, "?>")
		case len(rest) > 1 && rest[1] == '!':
			i += copyThrough(&out, rest, ">")
		case len(rest) > 1 && (rest[1] == '/' || isNameStart(rest[1])):
			i += copyTag(&out, rest)
		default:
			out.WriteString("&lt;")
			i++
		}
	}
	return out.Bytes()
}

// copyThrough copies rest up to and including end, or all of it when end
// never appears, and returns the number of bytes consumed.
func copyThrough(out *bytes.Buffer, rest []byte, end string) int {
	n := len(rest)
	if idx := bytes.Index(rest, []byte(end)); idx >= 0 {
		n = idx + len(end)
	}
	out.Write(rest[:n])
	return n
}

// copyTag copies a start or end tag, escaping '<' inside quoted attribute
// values. A tag cut short by another '<' outside quotes stops there.
func copyTag(out *bytes.Buffer, rest []byte) int {
	out.WriteByte('<')
	var quote byte
	for j := 1; j < len(rest); j++ {
		c := rest[j]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else if c == '<' {
				out.WriteString("&lt;")
				continue
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			out.WriteByte(c)
			return j + 1
		case c == '<':
			return j
		}
		out.WriteByte(c)
	}
	return len(rest)
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == ':' || c >= 0x80
}
