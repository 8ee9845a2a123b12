package email

import (
	"crypto/tls"
	"fmt"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SMTPClient delivers notices through an authenticated SMTP relay. It
// is the fallback backend for deployments without a Resend account.
type SMTPClient struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPClient creates a new SMTP client instance.
func NewSMTPClient(host, portStr, user, password, fromName, fromEmail string) (*SMTPClient, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %w", portStr, err)
	}

	return &SMTPClient{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// Send attempts one delivery. Connection and send failures are captured
// in the result details, never raised as errors.
func (c *SMTPClient) Send(msg Message) Result {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return Result{Details: fmt.Sprintf("setting sender: %v", err)}
	}
	if err := m.To(msg.To); err != nil {
		return Result{Details: fmt.Sprintf("setting recipient: %v", err)}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return Result{Details: fmt.Sprintf("creating SMTP client (host=%s port=%d): %v", c.host, c.port, err)}
	}

	if err := client.DialAndSend(m); err != nil {
		return Result{Details: fmt.Sprintf("sending mail (host=%s port=%d): %v", c.host, c.port, err)}
	}

	return Result{OK: true}
}
