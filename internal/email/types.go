package email

// Email is one outgoing message.
type Email struct {
	To      []string
	Subject string
	Body    string // html
}

// TemplateData holds the substitution values for an email template.
type TemplateData map[string]interface{}
