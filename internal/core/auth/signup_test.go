package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
)

func newSignup(gw domain.AuthGateway) (*SignupHandler, *fakeErrorBox, *fakeNotifier) {
	box := &fakeErrorBox{}
	notifier := &fakeNotifier{}
	return NewSignupHandler(gw, box, notifier, logger.Discard()), box, notifier
}

func TestSignup_PasswordMismatch(t *testing.T) {
	gw := &spyGateway{}
	h, box, notifier := newSignup(gw)

	out := h.Submit(context.Background(), domain.SignupForm{
		Name:            "Ana",
		Email:           "ana@x.com",
		Password:        "abc",
		ConfirmPassword: "xyz",
	})

	assert.Equal(t, domain.OutcomeInvalid, out.Kind)
	assert.ErrorIs(t, out.Err, domain.ErrPasswordMismatch)
	assert.Zero(t, gw.calls())

	text, visible := box.state()
	assert.True(t, visible)
	assert.Equal(t, "As senhas não coincidem", text)
	assert.Empty(t, notifier.all())
}

func TestSignup_Success(t *testing.T) {
	gw := &spyGateway{}
	h, box, notifier := newSignup(gw)
	box.Show("stale error")

	out := h.Submit(context.Background(), domain.SignupForm{
		Name:            "Ana",
		Email:           "ana@x.com",
		Password:        "abc123",
		ConfirmPassword: "abc123",
	})

	assert.Equal(t, domain.OutcomeSuccess, out.Kind)
	assert.True(t, out.OK())
	assert.NoError(t, out.Err)

	require.Len(t, gw.signups, 1)
	assert.Equal(t, domain.SignupRequest{Name: "Ana", Email: "ana@x.com", Password: "abc123"}, gw.signups[0])

	text, visible := box.state()
	assert.False(t, visible)
	assert.Empty(t, text)
	assert.Equal(t, []string{"Cadastro realizado com sucesso!"}, notifier.all())
}

func TestSignup_RemoteFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.OutcomeKind
	}{
		{"rejected", fmt.Errorf("%w: status 409", domain.ErrRejected), domain.OutcomeRejected},
		{"unreachable", fmt.Errorf("%w: connection refused", domain.ErrUnreachable), domain.OutcomeUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &spyGateway{err: tt.err}
			h, box, notifier := newSignup(gw)

			out := h.Submit(context.Background(), domain.SignupForm{Password: "p", ConfirmPassword: "p"})

			assert.Equal(t, tt.kind, out.Kind)
			assert.False(t, out.OK())
			assert.Equal(t, 1, gw.calls())

			text, visible := box.state()
			assert.True(t, visible)
			assert.Equal(t, "Erro ao cadastrar. Tente novamente.", text)
			assert.Empty(t, notifier.all())
		})
	}
}

func TestSignup_ClearsErrorOnEveryActivation(t *testing.T) {
	gw := &spyGateway{}
	h, box, _ := newSignup(gw)

	h.Submit(context.Background(), domain.SignupForm{Password: "a", ConfirmPassword: "b"})
	h.Submit(context.Background(), domain.SignupForm{Password: "a", ConfirmPassword: "a"})

	assert.Equal(t, 2, box.clears)
	_, visible := box.state()
	assert.False(t, visible)
}
