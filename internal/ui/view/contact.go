package view

import (
	"strings"

	"github.com/greenaire/site/internal/ui/model"
)

// ContactFormID is the id of the rendered form element.
const ContactFormID = "contact-form"

var contactInputs = []struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
}{
	{Name: model.FieldName, Label: "Your Name", Type: "text", Placeholder: "John Doe"},
	{Name: model.FieldEmail, Label: "Email Address", Type: "email", Placeholder: "you@example.com"},
	{Name: model.FieldMessage, Label: "Your Message", Type: "textarea", Placeholder: "Tell us about your project..."},
}

// ContactForm renders the contact panel for the given form state: the success
// notice after a delivered message, the form otherwise.
func ContactForm(state model.ContactState) string {
	var b strings.Builder
	b.WriteString(`<div class="contact-panel">`)
	b.WriteString(`<h2 class="contact-title">Send us a message</h2>`)

	if state.Status == model.StatusSuccess {
		b.WriteString(`<div class="contact-success" role="status">`)
		b.WriteString(`<h3>Message sent successfully!</h3>`)
		b.WriteString(`<p>Thank you for contacting us. We'll get back to you within 24 hours.</p>`)
		b.WriteString(`<button type="button" class="button" data-contact-reset>Send another message</button>`)
		b.WriteString(`</div></div>`)
		return b.String()
	}

	formClass := "contact-form"
	submitting := state.Status == model.StatusSubmitting
	if submitting {
		formClass += " is-submitting"
	}
	b.WriteString(`<form id="` + ContactFormID + `" class="` + formClass + `" novalidate>`)
	for _, input := range contactInputs {
		msg, hasErr := state.Errors[input.Name]
		fieldClass := "form-field"
		if hasErr {
			fieldClass += " form-field-error"
		}
		value := escape(state.Fields.Get(input.Name))
		b.WriteString(`<div class="` + fieldClass + `" id="` + input.Name + `-field">`)
		b.WriteString(`<label for="` + input.Name + `">` + input.Label + `</label>`)
		if input.Type == "textarea" {
			b.WriteString(`<textarea id="` + input.Name + `" name="` + input.Name + `" rows="5" placeholder="` +
				escape(input.Placeholder) + `" data-contact-field>` + value + `</textarea>`)
		} else {
			b.WriteString(`<input type="` + input.Type + `" id="` + input.Name + `" name="` + input.Name + `" value="` + value +
				`" placeholder="` + escape(input.Placeholder) + `" data-contact-field />`)
		}
		if hasErr {
			b.WriteString(`<p class="field-error" role="alert">` + escape(msg) + `</p>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`<button type="submit" class="button contact-submit"`)
	if submitting {
		b.WriteString(` disabled aria-busy="true">Sending...`)
	} else {
		b.WriteString(`>Send Message`)
	}
	b.WriteString(`</button></form></div>`)
	return b.String()
}

// ContactDetails renders the company contact card shown beside the form.
func ContactDetails(details []model.ContactDetail) string {
	var b strings.Builder
	b.WriteString(`<aside class="contact-details"><h2>Contact Information</h2><dl>`)
	for _, d := range details {
		b.WriteString(`<dt>` + escape(d.Label) + `</dt><dd>`)
		if d.Href != "" {
			b.WriteString(`<a href="` + escape(d.Href) + `">` + escape(d.Value) + `</a>`)
		} else {
			b.WriteString(escape(d.Value))
		}
		b.WriteString(`</dd>`)
	}
	b.WriteString(`</dl></aside>`)
	return b.String()
}
