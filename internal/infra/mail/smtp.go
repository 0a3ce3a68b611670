package mail

import (
	"bytes"
	"context"

	"github.com/wneessen/go-mail"

	"giftsafer/internal/pkg/config"
	"giftsafer/internal/pkg/errs"
	"giftsafer/internal/usecase/commands"
)

// SMTPNotifier delivers inquiry mail to the operations inbox. A fresh
// client is dialed per send; inquiry volume is far too low to justify
// a persistent connection.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTPNotifier(cfg config.SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, errs.New("SMTP host is required")
	}
	if cfg.ContactAddr == "" {
		return nil, errs.New("SMTP contact address is required")
	}
	return &SMTPNotifier{cfg: cfg}, nil
}

func (n *SMTPNotifier) Send(ctx context.Context, subject, body string, attachments []commands.Attachment) error {
	msg := mail.NewMsg()

	if err := msg.From(n.cfg.User); err != nil {
		return errs.Wrap(err, "failed to set from address")
	}
	if err := msg.To(n.cfg.ContactAddr); err != nil {
		return errs.Wrap(err, "failed to set to address")
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	for _, a := range attachments {
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Data), mail.WithFileContentType(mail.ContentType(a.MIMEType))); err != nil {
			return errs.Wrap(err, "failed to attach file")
		}
	}

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	// Implicit TLS for port 465, STARTTLS for others
	if n.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}
	if n.cfg.User != "" && n.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.User),
			mail.WithPassword(n.cfg.Password),
		)
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return errs.Wrap(err, "failed to create mail client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}

	return nil
}
