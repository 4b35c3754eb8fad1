// Package smtp delivers alert emails over SMTP.
package smtp

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// DefaultAddr is the submission endpoint used when none is configured.
const DefaultAddr = "smtp.gmail.com:587"

// Ensure Notifier implements the interface.
var _ driven.Notifier = (*Notifier)(nil)

// Config holds SMTP connection and sender settings.
type Config struct {
	// Addr is the host:port of the SMTP server.
	Addr string

	// Username authenticates with the server. Defaults to From.
	Username string

	// Password authenticates with the server (app password for Gmail).
	Password string

	// From is the sender address.
	From string

	// To are the recipient addresses.
	To []string
}

// Notifier implements driven.Notifier over SMTP with STARTTLS.
type Notifier struct {
	config Config
}

// NewNotifier creates an SMTP notifier.
func NewNotifier(config Config) (*Notifier, error) {
	if config.From == "" {
		return nil, fmt.Errorf("smtp: %w: sender address required", domain.ErrInvalidInput)
	}
	if len(config.To) == 0 {
		return nil, fmt.Errorf("smtp: %w: at least one recipient required", domain.ErrInvalidInput)
	}
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.Username == "" {
		config.Username = config.From
	}

	return &Notifier{config: config}, nil
}

// Notify sends a single alert with the given subject and body.
// net/smtp does not thread contexts through the protocol exchange, so
// only cancellation before the send is honoured.
func (n *Notifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	host, _, err := net.SplitHostPort(n.config.Addr)
	if err != nil {
		return fmt.Errorf("smtp: invalid address %q: %w", n.config.Addr, err)
	}

	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, host)
	msg := buildMessage(n.config.From, n.config.To, subject, body)

	if err := smtp.SendMail(n.config.Addr, auth, n.config.From, n.config.To, msg); err != nil {
		return fmt.Errorf("smtp: send alert: %w", err)
	}
	return nil
}

func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
