package web

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tammam101/temox/backend/internal/catalog"
	"github.com/tammam101/temox/backend/internal/contact"
	"github.com/tammam101/temox/backend/internal/validation"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func testViews() *Views {
	v := NewViews()
	v.now = func() time.Time { return time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC) }
	return v
}

func TestViews_LayoutWrapsBody(t *testing.T) {
	out := renderString(t, testViews().NotFound(catalog.Default().List()))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Page Not Found | TEMOX</title>")
	main := out[strings.Index(out, "<main>"):strings.Index(out, "</main>")]
	assert.Contains(t, main, `id="not-found"`)
	assert.Contains(t, out, "&copy; 2031 TEMOX")
	assert.Equal(t, footerServices, strings.Count(out[strings.Index(out, "<footer>"):], "<li><a href="))
}

func TestViews_EscapesCatalogText(t *testing.T) {
	svc := catalog.Service{
		Title:    `<script>alert("x")</script>`,
		Slug:     `a"b`,
		FullDesc: "Tom & Jerry",
		Icon:     "shield",
	}
	out := renderString(t, testViews().ServiceDetail(svc, nil))

	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "Tom &amp; Jerry")
	assert.Contains(t, out, `/contact?service=a%22b`)
	assert.Contains(t, out, "<title>&lt;script&gt;")
}

func TestViews_ContactStates(t *testing.T) {
	v := testViews()
	services := catalog.Default().List()
	form := contact.NewForm(validation.New(catalog.Default()), "it-consulting")

	out := renderString(t, v.Contact(form, services))
	assert.Contains(t, out, `data-state="idle"`)
	assert.Contains(t, out, `<option value="it-consulting" selected>`)
	assert.Contains(t, out, `id="submit"`)
	assert.NotContains(t, out, `class="field-error"`)

	form.Values.Details = `</textarea><b>hi</b>`
	require.NoError(t, form.Submit(context.Background(), nil, ""))
	out = renderString(t, v.Contact(form, services))
	assert.Contains(t, out, `data-field="fullName"`)
	assert.Contains(t, out, "&lt;/textarea&gt;&lt;b&gt;hi&lt;/b&gt;")

	form.State = contact.StateSubmitted
	form.Values.Email = "ops@example.com"
	out = renderString(t, v.Contact(form, services))
	assert.Contains(t, out, `data-state="submitted"`)
	assert.Contains(t, out, "ops@example.com")
	assert.NotContains(t, out, "<form")
}
