package mailer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"recipe-book/backend/app/models"
	"recipe-book/backend/app/worker"
	"recipe-book/backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type recorder struct {
	mu   sync.Mutex
	msgs []*mail.Msg
	err  error
}

func (r *recorder) send(_ context.Context, msg *mail.Msg) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return r.err
}

func newTestMailer(enabled bool, rec *recorder) (*Mailer, *worker.Pool) {
	pool := worker.New(worker.Config{Core: 1, Max: 2, Queue: 4, ShutdownTimeout: time.Second})
	m := New(config.Mail{Enabled: enabled, From: "no-reply@recipes.local"}, pool)
	m.send = rec.send
	return m, pool
}

var chef = models.User{ID: 7, Role: models.RoleChef, UserName: "chef7", UserPassword: "s3cret", UserEmail: "chef7@recipes.local"}

func TestAccountCreatedSendsThroughPool(t *testing.T) {
	rec := &recorder{}
	m, pool := newTestMailer(true, rec)

	m.AccountCreated(chef)
	require.NoError(t, pool.Shutdown())

	require.Len(t, rec.msgs, 1)
	to, err := rec.msgs[0].GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"chef7@recipes.local"}, to)
	assert.Equal(t, []string{"New account created"}, rec.msgs[0].GetGenHeader(mail.HeaderSubject))
}

func TestAccountMessageOmitsPassword(t *testing.T) {
	msg, err := newAccountMessage("no-reply@recipes.local", chef)
	require.NoError(t, err)

	var body strings.Builder
	_, err = msg.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "chef7")
	assert.NotContains(t, body.String(), "s3cret")
}

func TestDisabledMailerSendsNothing(t *testing.T) {
	rec := &recorder{}
	m, pool := newTestMailer(false, rec)

	m.AccountCreated(chef)
	require.NoError(t, pool.Shutdown())
	assert.Empty(t, rec.msgs)
}

func TestSendFailureIsSwallowed(t *testing.T) {
	rec := &recorder{err: errors.New("smtp down")}
	m, pool := newTestMailer(true, rec)

	assert.NotPanics(t, func() { m.AccountCreated(chef) })
	require.NoError(t, pool.Shutdown())
	assert.Len(t, rec.msgs, 1)
}

func TestInvalidRecipientIsNotQueued(t *testing.T) {
	rec := &recorder{}
	m, pool := newTestMailer(true, rec)

	bad := chef
	bad.UserEmail = "not an address"
	m.AccountCreated(bad)
	require.NoError(t, pool.Shutdown())
	assert.Empty(t, rec.msgs)
}
