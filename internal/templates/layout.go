// Package templates renders the HTML pages of the web server.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// write appends formatted text with every argument HTML-escaped.
func write(w io.Writer, format string, args ...any) error {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = templ.EscapeString(fmt.Sprint(a))
	}
	_, err := fmt.Fprintf(w, format, escaped...)
	return err
}

// Layout wraps body in the shared page chrome
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s | Lobbying Disclosures</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 72rem; color: #1b1b1b; }
nav a { margin-right: 1rem; }
table { border-collapse: collapse; width: 100%%; margin-bottom: 2rem; }
th, td { border-bottom: 1px solid #dfe1e2; padding: .4rem .6rem; text-align: left; vertical-align: top; }
code { font-size: .85em; color: #565c65; }
.empty { color: #71767a; font-style: italic; }
</style>
</head>
<body>
<nav><a href="/">Streams</a><a href="/runs">Load history</a></nav>
<h1>%s</h1>
`, title, title); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}
