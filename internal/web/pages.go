// Package web renders the marketing pages: home, service detail, contact
// and the not-found view.
package web

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"github.com/tammam101/temox/backend/internal/catalog"
	"github.com/tammam101/temox/backend/internal/contact"
)

// Features listed on every service detail page.
var Features = []string{
	"24/7 Monitoring & Support",
	"Enterprise-Grade Security",
	"Scalable Architecture",
	"Expert Consultation",
}

const footerServices = 4

// Views builds page components inside the site layout.
type Views struct {
	now func() time.Time
}

func NewViews() *Views {
	return &Views{now: time.Now}
}

func (v *Views) page(title string, services []catalog.Service, body templ.Component) templ.Component {
	footer := services
	if len(footer) > footerServices {
		footer = footer[:footerServices]
	}
	shell := layout(title, footer, v.now().Year())
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return shell.Render(templ.WithChildren(ctx, body), w)
	})
}

// Home lists every service as a card linking to its detail page.
func (v *Views) Home(services []catalog.Service) templ.Component {
	return v.page("", services, homeBody(services))
}

// ServiceDetail shows one service with its features and a call to action.
func (v *Views) ServiceDetail(svc catalog.Service, services []catalog.Service) templ.Component {
	return v.page(svc.Title, services, serviceBody(svc))
}

// Contact renders form in whatever state it is in.
func (v *Views) Contact(form *contact.Form, services []catalog.Service) templ.Component {
	return v.page("Request Service", services, contactBody(form, services))
}

func (v *Views) NotFound(services []catalog.Service) templ.Component {
	return v.page("Page Not Found", services, notFoundBody())
}

func icon(h *htmlWriter, name string) {
	h.raw(`<span class="icon icon-`)
	h.text(name)
	h.raw(`" aria-hidden="true"></span>`)
}

func homeBody(services []catalog.Service) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="hero" style="background-image: url('/assets/hero-bg.png'); background-size: cover;">`)
		h.raw(`<div class="container" style="text-align: center; padding: 8rem 1rem;">`)
		h.raw(`<span>Next Gen IT Solutions</span><h1>TEMOX <br>Advanced Technology</h1>`)
		h.raw(`<p>Cybersecurity &bull; Networking &bull; Development &bull; Smart Systems<br>`)
		h.raw(`Empowering your digital future with military-grade protection and cutting-edge infrastructure.</p>`)
		h.raw(`<a href="#services" class="btn">View Services</a> <a href="/contact" class="btn">Request Service</a>`)
		h.raw(`</div></section>`)

		h.raw(`<section id="services"><div class="container"><h2>Our Expertise</h2><div class="grid">`)
		for _, svc := range services {
			h.raw(`<a href="`)
			h.href("/services/" + svc.Slug)
			h.raw(`" class="card service-card" data-slug="`)
			h.text(svc.Slug)
			h.raw(`">`)
			icon(h, svc.Icon)
			h.raw("<h3>")
			h.text(svc.Title)
			h.raw("</h3><p>")
			h.text(svc.ShortDesc)
			h.raw("</p><span>Learn More &rarr;</span></a>")
		}
		h.raw(`</div></div></section>`)

		h.raw(`<section class="cta"><div class="container" style="text-align: center;">`)
		h.raw(`<h2>Ready to Secure Your Future?</h2>`)
		h.raw(`<p>Partner with TEMOX for industry-leading IT solutions. Let&#39;s build something secure, scalable, and spectacular.</p>`)
		h.raw(`<a href="/contact" class="btn">Get Started Now &rarr;</a></div></section>`)
	})
}

func serviceBody(svc catalog.Service) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container"><a href="/#services">&larr; Back to Services</a><h1>`)
		icon(h, svc.Icon)
		h.raw(" ")
		h.text(svc.Title)
		h.raw(`</h1><p class="lead">`)
		h.text(svc.FullDesc)
		h.raw(`</p><ul class="features">`)
		for _, f := range Features {
			h.raw("<li>")
			h.text(f)
			h.raw("</li>")
		}
		h.raw(`</ul><div class="cta"><h3>Ready to upgrade your `)
		h.text(svc.Title)
		h.raw(`?</h3><p>Get a custom quote tailored to your specific business needs. Our team is ready to deploy.</p>`)
		h.raw(`<a href="`)
		h.href("/contact?service=" + url.QueryEscape(svc.Slug))
		h.raw(`" class="btn">Request This Service</a></div></div>`)
	})
}

func notFoundBody() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container" style="text-align: center; padding: 8rem 1rem;" id="not-found">`)
		h.raw(`<h1>404 Page Not Found</h1><p>The page you are looking for does not exist.</p>`)
		h.raw(`<a href="/" class="btn">Return Home</a></div>`)
	})
}
