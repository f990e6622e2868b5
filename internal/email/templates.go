package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in templates for transactional mail. Kept inline; the set is
// small and ships with the binary.
var builtinTemplates = map[string]string{
	"verification": `<p>Hi {{.Name}},</p>
<p>Confirm your email address by entering this code: <b>{{.Token}}</b></p>`,

	"password_reset": `<p>Hi {{.Name}},</p>
<p>Use this code to reset your password: <b>{{.Token}}</b></p>
<p>The code expires in one hour. If you did not request a reset, ignore this mail.</p>`,

	"order_declined": `<p>Hi {{.Name}},</p>
<p>Order {{.OrderNumber}} was declined by the customer.</p>
{{if .Reason}}<blockquote>{{.Reason}}</blockquote>{{end}}`,

	"order_delivered": `<p>Hi {{.Name}},</p>
<p>Your video for {{.RecipientName}} is ready! Order {{.OrderNumber}} is waiting for your review.</p>`,

	"order_approved": `<p>Hi {{.Name}},</p>
<p>Great news: your video for order {{.OrderNumber}} was approved by the customer.</p>`,

	"order_revision": `<p>Hi {{.Name}},</p>
<p>The customer requested changes on order {{.OrderNumber}}:</p>
<blockquote>{{.Reason}}</blockquote>`,

	"application_decision": `<p>Hi {{.Name}},</p>
<p>Your creator application is now <b>{{.Status}}</b>.</p>
{{if .Notes}}<p>Reviewer notes: {{.Notes}}</p>{{end}}`,
}

type templateRenderer struct {
	templates map[string]*template.Template
}

func newTemplateRenderer() (*templateRenderer, error) {
	r := &templateRenderer{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		tmpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse email template %q: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

func (r *templateRenderer) Render(name string, data TemplateData) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template %q: %w", name, err)
	}
	return buf.String(), nil
}
