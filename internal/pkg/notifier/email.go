package notifier

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/realsteps/presence-backend-go/internal/config"
	"github.com/realsteps/presence-backend-go/internal/domain/compliance"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailNotifier delivers compliance alerts over SMTP to the configured
// supervision inbox. Duplicate alerts from successive sweeps are expected;
// rate limiting, if desired, belongs in front of the inbox, not here.
type EmailNotifier struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailNotifier(cfg config.SMTPConfig) (*EmailNotifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse alert templates: %w", err)
	}

	return &EmailNotifier{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type missedReportData struct {
	EmployeeCode string
	CheckInTime  string
	LastActivity string
	MissedAt     string
}

// Notify implements compliance.Notifier.
func (n *EmailNotifier) Notify(ctx context.Context, alert compliance.Alert) error {
	data := missedReportData{
		EmployeeCode: alert.EmployeeCode,
		CheckInTime:  alert.CheckInTime.Format(time.RFC3339),
		LastActivity: alert.LastActivity.Format(time.RFC3339),
		MissedAt:     alert.MissedAt.Format(time.RFC3339),
	}

	var body bytes.Buffer
	if err := n.templates.ExecuteTemplate(&body, "missed_report.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Missed status report: employee %s", alert.EmployeeCode)
	msg := buildMessage(n.cfg.From, n.cfg.AlertsTo, subject, body.String())

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{n.cfg.AlertsTo}, msg); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	slog.Info("Compliance alert delivered",
		"employee_code", alert.EmployeeCode,
		"session_id", alert.SessionID)
	return nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return msg.Bytes()
}
