// Package mailer sends the booking confirmation email over SMTP. Sending is
// best-effort: the booking flow logs failures and moves on, it never rolls a
// confirmed appointment back because an email bounced.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"
)

// ErrSend wraps SMTP transport failures.
var ErrSend = errors.New("mailer: failed to send message")

// Logger is the logging interface the mailer depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config holds the SMTP connection settings.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	DialTimeout time.Duration
}

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	ClientName     string
	SubServiceName string
	StaffName      string
	Date           string // YYYY-MM-DD
	StartTime      string // HH:MM
	EndTime        string // HH:MM
	Price          float64
}

// Mailer sends transactional emails.
type Mailer struct {
	client *mail.Client
	from   string
	tmpl   *template.Template
	log    Logger
}

// New creates an SMTP mailer and parses the confirmation template.
func New(cfg Config, log Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Port),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.DialTimeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.DialTimeout))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: create smtp client: %w", err)
	}

	tmpl, err := template.ParseFiles("templates/booking_confirmed_email.html")
	if err != nil {
		return nil, fmt.Errorf("mailer: parse confirmation template: %w", err)
	}

	return &Mailer{
		client: client,
		from:   cfg.From,
		tmpl:   tmpl,
		log:    log,
	}, nil
}

// SendBookingConfirmation emails the client their confirmed appointment.
func (m *Mailer) SendBookingConfirmation(ctx context.Context, to string, data BookingConfirmationData) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("%w: set from: %v", ErrSend, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: set to: %v", ErrSend, err)
	}
	msg.Subject(fmt.Sprintf("Booking confirmed: %s on %s at %s", data.SubServiceName, data.Date, data.StartTime))
	if err := msg.SetBodyHTMLTemplate(m.tmpl, data); err != nil {
		return fmt.Errorf("%w: render body: %v", ErrSend, err)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m.log.Info("Booking confirmation email sent to %s", to)
	return nil
}
