package web

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/tammam101/temox/backend/internal/catalog"
)

const styles = `
    body { margin: 0; background: #0a0a0a; color: #e5e5e5; font-family: system-ui, sans-serif; }
    a { color: inherit; }
    .container { max-width: 72rem; margin: 0 auto; padding: 0 1rem; }
    nav .container { display: flex; align-items: center; justify-content: space-between; height: 5rem; }
    .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(15rem, 1fr)); gap: 1.5rem; }
    .card { display: block; padding: 2rem; border: 1px solid rgba(255,255,255,.1); border-radius: .75rem; text-decoration: none; }
    .btn { display: inline-block; padding: 1rem 2rem; background: #ff2a2a; color: #fff; border: 0; border-radius: .5rem; font-weight: 700; text-decoration: none; cursor: pointer; }
    .btn[disabled] { opacity: .6; cursor: wait; }
    .field-error { color: #ff6b6b; font-size: .875rem; }
    .upload { border: 1px dashed rgba(255,255,255,.2); border-radius: .5rem; padding: 1.5rem; text-align: center; color: #777; }
    input, select, textarea { width: 100%; box-sizing: border-box; padding: .6rem; background: rgba(0,0,0,.5); color: #fff; border: 1px solid rgba(255,255,255,.1); border-radius: .4rem; }
`

// htmlWriter keeps the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s HTML-escaped; safe in element bodies and quoted attributes.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) href(u string) {
	h.text(string(templ.URL(u)))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

// component adapts a markup function into a templ.Component.
func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

// layout wraps its children in the document shell with navbar and footer.
func layout(title string, footer []catalog.Service, year int) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		if title != "" {
			h.text(title)
			h.raw(" | ")
		}
		h.raw("TEMOX</title><style>" + styles + "</style></head><body>")

		h.raw(`<nav><div class="container"><a href="/" class="brand"><strong>TEMOX</strong></a><div class="links">`)
		h.raw(`<a href="/">Home</a> <a href="/#services">Services</a> <a href="/contact">Contact</a> `)
		h.raw(`<a href="/contact" class="btn">Get Started</a></div></div></nav>`)

		h.raw("<main>")
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main>")

		h.raw(`<footer><div class="container">`)
		h.raw(`<p>Advanced IT &amp; Cybersecurity solutions for the modern digital landscape. Secure, scalable, and future-ready.</p>`)
		h.raw("<h4>Services</h4><ul>")
		for _, svc := range footer {
			h.raw(`<li><a href="`)
			h.href("/services/" + svc.Slug)
			h.raw(`">`)
			h.text(svc.Title)
			h.raw("</a></li>")
		}
		h.raw("</ul><h4>Contact</h4><ul><li>t.__x@tammam.online</li><li>+1 (555) 123-4567</li><li>123 Cyber Ave, Tech City</li></ul>")
		h.raw("<p>&copy; " + strconv.Itoa(year) + " TEMOX. All rights reserved.</p>")
		h.raw("</div></footer></body></html>")
	})
}
