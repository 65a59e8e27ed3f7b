// Package mailer sends the account-created email off the request path.
package mailer

import (
	"context"
	"fmt"
	"time"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/worker"
	"recipe-book/backend/config"
	"recipe-book/backend/global"

	"github.com/wneessen/go-mail"
)

const sendTimeout = 30 * time.Second

type sendFunc func(ctx context.Context, msg *mail.Msg) error

type Mailer struct {
	cfg  config.Mail
	pool *worker.Pool
	send sendFunc
}

func New(cfg config.Mail, pool *worker.Pool) *Mailer {
	m := &Mailer{cfg: cfg, pool: pool}
	m.send = m.dialAndSend
	return m
}

// AccountCreated queues the welcome email for u. Delivery failures are
// logged and never reach the caller.
func (m *Mailer) AccountCreated(u models.User) {
	if !m.cfg.Enabled {
		global.Logger.Info().Str("to", u.UserEmail).Msg("mail disabled, account email not sent")
		return
	}
	msg, err := newAccountMessage(m.cfg.From, u)
	if err != nil {
		global.Logger.Error().Err(err).Str("to", u.UserEmail).Msg("build account email")
		return
	}
	m.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := m.send(ctx, msg); err != nil {
			global.Logger.Error().Err(err).Str("to", u.UserEmail).Msg("the email couldn't be sent")
			return
		}
		global.Logger.Info().Str("to", u.UserEmail).Msg("account email sent")
	})
}

func newAccountMessage(from string, u models.User) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("from %q: %w", from, err)
	}
	if err := msg.To(u.UserEmail); err != nil {
		return nil, fmt.Errorf("to %q: %w", u.UserEmail, err)
	}
	msg.Subject("New account created")
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(
		"Your new account has been created successfully!! The username is <b>%s</b>.", u.UserName))
	return msg, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
