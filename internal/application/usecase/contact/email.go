package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/khoahotran/portfolio/internal/domain/contact"
)

//go:embed templates/contact_email.html
var templateFS embed.FS

var emailTemplate = template.Must(template.ParseFS(templateFS, "templates/contact_email.html"))

// renderEmailBody escapes every field through html/template.
func renderEmailBody(m contact.Message) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, m); err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return buf.String(), nil
}

func emailSubject(m contact.Message) string {
	return "New Contact: " + m.Subject
}
