package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager renders the built-in email templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		_ = tm.AddTemplate(name, body)
	}
	return tm
}

// Render executes a named template with the given data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate registers or replaces a template.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

var builtinTemplates = map[string]string{
	TemplateVerificationOTP: `
<h2>Welcome to GrindUp</h2>
<p>Your verification code is <b>{{.Code}}</b>.</p>
<p>The code expires in {{.TTLMinutes}} minutes.</p>`,

	TemplateApprovalDecision: `
<h2>Profile review complete</h2>
<p>Hello {{.Name}},</p>
<p>Your organization profile has been <b>{{.Decision}}</b>.</p>`,

	TemplateApplicationReceipt: `
<h2>New application received</h2>
<p>{{.CollegeName}} applied for <b>{{.JobTitle}}</b>.</p>`,

	TemplateApplicationSent: `
<h2>Application submitted</h2>
<p>Your application for <b>{{.JobTitle}}</b> at {{.CompanyName}} has been received.</p>`,

	TemplateInvitation: `
<h2>You have been invited</h2>
<p>{{.CompanyName}} invited you to apply for <b>{{.JobTitle}}</b>.</p>
{{if .Message}}<p>"{{.Message}}"</p>{{end}}`,

	TemplatePasswordReset: `
<h2>Password reset</h2>
<p>Use this token to reset your password: <b>{{.Token}}</b></p>`,
}
