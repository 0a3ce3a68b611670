package bootstrap

import (
	"giftsafer/internal/infra/mail"
	"giftsafer/internal/pkg/config"
	"giftsafer/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewNotifier(cfg config.Config) (*mail.SMTPNotifier, error) {
	return mail.NewSMTPNotifier(cfg.SMTP)
}
