package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"go-jobtrack-backend/config"
	"go-jobtrack-backend/internal/domain"
)

// Service sends templated mail via SMTP and implements domain.EmailSender.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	tmpl      *template.Template
}

// jobAlertTemplate is the HTML body for skill-match alerts.
const jobAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Job Match</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .skills { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>A job matching your skills was posted</h1>
        </div>
        <div class="content">
            <p>Hi {{.FirstName}},</p>
            <div class="field">
                <div class="label">Position:</div>
                <div>{{.JobTitle}}{{if .JobType}} ({{.JobType}}){{end}}</div>
            </div>
            {{if .EmploymentType}}
            <div class="field">
                <div class="label">Employment type:</div>
                <div>{{.EmploymentType}}</div>
            </div>
            {{end}}
            <div class="field">
                <div class="label">Location:</div>
                <div>{{.Location}}</div>
            </div>
            {{if .MatchedSkills}}
            <div class="field">
                <div class="label">Your matching skills:</div>
                <div class="skills">{{range $i, $s := .MatchedSkills}}{{if $i}}, {{end}}{{$s}}{{end}}</div>
            </div>
            {{end}}
            {{if .JobURL}}<p><a href="{{.JobURL}}">View the posting</a></p>{{end}}
        </div>
        <div class="footer">
            <p>You received this because your profile skills match this posting.</p>
        </div>
    </div>
</body>
</html>`

func NewEmailService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		tmpl:      template.Must(template.New("job_alert").Parse(jobAlertTemplate)),
	}
}

// IsConfigured checks if the service has a usable SMTP configuration.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendJobAlert sends a single skill-match alert. The context deadline is
// honored even though net/smtp itself is not context-aware; a send still in
// flight after cancellation is abandoned.
func (s *Service) SendJobAlert(ctx context.Context, to string, data domain.JobAlertEmail) error {
	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("New job match: %s", data.JobTitle)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send email: %w", ctx.Err())
	}
}
