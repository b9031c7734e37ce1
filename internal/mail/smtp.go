package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTPTransport delivers through an authenticated SMTP relay (Brevo in
// production).
type SMTPTransport struct {
	host string
	port int
	user string
	pass string
}

func NewSMTPTransport(host string, port int, user, pass string) *SMTPTransport {
	return &SMTPTransport{
		host: host,
		port: port,
		user: user,
		pass: pass,
	}
}

func (t *SMTPTransport) Send(ctx context.Context, m Message) error {

	msg := gomail.NewMsg()

	if m.FromName != "" {
		if err := msg.FromFormat(m.FromName, m.From); err != nil {
			return fmt.Errorf("mail: invalid sender %q: %w", m.From, err)
		}
	} else {
		if err := msg.From(m.From); err != nil {
			return fmt.Errorf("mail: invalid sender %q: %w", m.From, err)
		}
	}

	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("mail: invalid recipient %q: %w", m.To, err)
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, m.HTML)

	opts := []gomail.Option{
		gomail.WithPort(t.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.user),
		gomail.WithPassword(t.pass),
	}

	// Port 465 is implicit TLS; everything else negotiates STARTTLS.
	if t.port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}

	client, err := gomail.NewClient(t.host, opts...)
	if err != nil {
		return fmt.Errorf("mail: smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}

	return nil
}
