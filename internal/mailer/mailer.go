package mailer

import (
	"bytes"
	"context"
	"errors"
	"html/template"

	"github.com/sirupsen/logrus"
	gomail "github.com/wneessen/go-mail"
)

// Result is the explicit outcome of a notification attempt. The submission
// pipeline inspects it for logging and then deliberately discards it: a
// failed notification never rolls back persistence or fails the request.
type Result struct {
	Success   bool
	MessageID string
	Err       error
}

// Message is a templated notification request.
type Message struct {
	Subject  string
	Template string // "contact" or "career"
	Data     map[string]string
}

// Mailer renders a fixed HTML template and delivers it. Implementations never
// panic or propagate errors past their boundary.
type Mailer interface {
	Send(ctx context.Context, m Message) Result
}

var (
	errMissingParams   = errors.New("missing required parameters")
	errUnknownTemplate = errors.New("invalid template")
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	APILink  string // base URL used to build resume download links
}

type smtpMailer struct {
	cfg SMTPConfig
	log *logrus.Logger
}

func NewSMTP(cfg SMTPConfig, log *logrus.Logger) Mailer {
	if log == nil {
		log = logrus.New()
	}
	return &smtpMailer{cfg: cfg, log: log}
}

var templates = map[string]*template.Template{
	"career": template.Must(template.New("career").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #2a2a2a;">Career Form Submission</h2>
  <p><strong>First Name:</strong> {{.firstName}}</p>
  <p><strong>Last Name:</strong> {{.lastName}}</p>
  <p><strong>Email ID:</strong> {{.emailId}}</p>
  <p><strong>Phone Number:</strong> {{.contactNumber}}</p>
  {{if .portfolioLink}}<p><strong>Portfolio Link:</strong> <a href="{{.portfolioLink}}" target="_blank">{{.portfolioLink}}</a></p>{{end}}
  {{if .message}}<p><strong>Message:</strong><br />{{.message}}</p>{{end}}
  {{if .resumeLink}}<p><strong>Resume:</strong> <a href="{{.resumeLink}}" target="_blank">Download Resume</a></p>{{end}}
  <hr />
  <p style="font-size: 0.9em; color: #666;">This email was sent automatically from the Career Form submission.</p>
</div>`)),

	"contact": template.Must(template.New("contact").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #2a2a2a;">Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.firstName}} {{.lastName}}</p>
  <p><strong>Phone Number:</strong> {{.contactNumber}}</p>
  <p><strong>Email:</strong> {{.emailId}}</p>
  <p><strong>Subject:</strong> {{.subject}}</p>
  <p><strong>Message:</strong><br />{{.message}}</p>
  <hr />
  <p style="font-size: 0.9em; color: #666;">This email was sent automatically from the Contact Form submission.</p>
</div>`)),
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) Result {
	if msg.Subject == "" || msg.Template == "" || msg.Data == nil {
		m.log.WithField("template", msg.Template).Error("mailer: missing required parameters")
		return Result{Err: errMissingParams}
	}

	tpl, ok := templates[msg.Template]
	if !ok {
		m.log.WithField("template", msg.Template).Error("mailer: invalid template")
		return Result{Err: errUnknownTemplate}
	}

	var body bytes.Buffer
	if err := tpl.Execute(&body, msg.Data); err != nil {
		m.log.WithError(err).Error("mailer: template render failed")
		return Result{Err: err}
	}

	out := gomail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		m.log.WithError(err).Error("mailer: invalid from address")
		return Result{Err: err}
	}
	// Submissions are delivered back to the site owner's inbox.
	if err := out.To(m.cfg.From); err != nil {
		m.log.WithError(err).Error("mailer: invalid to address")
		return Result{Err: err}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextHTML, body.String())

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		m.log.WithError(err).Error("mailer: client init failed")
		return Result{Err: err}
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		m.log.WithError(err).WithField("template", msg.Template).Error("mailer: send failed")
		return Result{Err: err}
	}

	id := out.GetMessageID()
	m.log.WithFields(logrus.Fields{
		"message_id": id,
		"template":   msg.Template,
	}).Info("mailer: email sent")
	return Result{Success: true, MessageID: id}
}
