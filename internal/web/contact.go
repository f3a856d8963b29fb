package web

import (
	"context"

	"github.com/a-h/templ"

	"github.com/tammam101/temox/backend/internal/catalog"
	"github.com/tammam101/temox/backend/internal/contact"
)

const submitScript = `<script>
  document.getElementById("contact-form").addEventListener("submit", function (e) {
    var btn = document.getElementById("submit");
    if (btn.disabled) { e.preventDefault(); return; }
    this.dataset.state = "submitting";
    btn.disabled = true;
    btn.textContent = "Submitting…";
  });
</script>`

type inputField struct {
	name, label, kind, placeholder string
	value                          func(*contact.Form) string
}

var textFields = []inputField{
	{"fullName", "Full Name", "text", "John Doe", func(f *contact.Form) string { return f.Values.FullName }},
	{"email", "Email Address", "email", "john@company.com", func(f *contact.Form) string { return f.Values.Email }},
	{"phone", "Phone Number", "text", "+1 (555) 000-0000", func(f *contact.Form) string { return f.Values.Phone }},
}

func fieldError(h *htmlWriter, form *contact.Form, name string) {
	msg := form.Errors.Get(name)
	if msg == "" {
		return
	}
	h.raw(`<p class="field-error" data-field="`)
	h.text(name)
	h.raw(`">`)
	h.text(msg)
	h.raw("</p>")
}

func contactBody(form *contact.Form, services []catalog.Service) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container" style="max-width: 42rem;"><h1>Request Service</h1>`)
		h.raw(`<p>Tell us about your project and we&#39;ll get back to you.</p>`)

		if form.State == contact.StateSubmitted {
			h.raw(`<div class="success" data-state="submitted"><h3>Message Sent!</h3><p>`)
			h.text(form.Confirmation())
			h.raw(`</p><a href="/" class="btn">Return Home</a></div></div>`)
			return
		}

		if form.State == contact.StateFailed {
			h.raw(`<p class="field-error" role="alert">We could not send your request. Please try again.</p>`)
		}
		h.raw(`<form method="post" action="/contact" id="contact-form" data-state="`)
		h.text(form.State.String())
		h.raw(`" novalidate>`)

		for _, f := range textFields {
			h.raw("<label>")
			h.text(f.label)
			h.raw(`<input name="`)
			h.text(f.name)
			h.raw(`" type="`)
			h.text(f.kind)
			h.raw(`" placeholder="`)
			h.text(f.placeholder)
			h.raw(`" value="`)
			h.text(f.value(form))
			h.raw(`"></label>`)
			fieldError(h, form, f.name)
		}

		h.raw(`<label>Service Needed<select name="serviceType"><option value="">Select a service</option>`)
		for _, svc := range services {
			h.raw(`<option value="`)
			h.text(svc.Slug)
			h.raw(`"`)
			if svc.Slug == form.Values.ServiceType {
				h.raw(" selected")
			}
			h.raw(">")
			h.text(svc.Title)
			h.raw("</option>")
		}
		h.raw("</select></label>")
		fieldError(h, form, "serviceType")

		h.raw(`<label>Project Details<textarea name="details" rows="5" placeholder="Tell us about your requirements...">`)
		h.text(form.Values.Details)
		h.raw("</textarea></label>")
		fieldError(h, form, "details")

		h.raw(`<div class="upload" aria-disabled="true"><span>Upload Project Files (Optional)</span><br>`)
		h.raw(`<small>PDF, DOCX, PNG up to 10MB</small></div>`)
		h.raw(`<button type="submit" class="btn" id="submit">Submit Request</button></form>`)
		h.raw(submitScript)
		h.raw("</div>")
	})
}
