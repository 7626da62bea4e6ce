package auth

import (
	"context"
	"sync"

	"amigofiel/internal/domain"
)

type fakeErrorBox struct {
	mu      sync.Mutex
	text    string
	visible bool
	clears  int
}

func (b *fakeErrorBox) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text, b.visible = "", false
	b.clears++
}

func (b *fakeErrorBox) Show(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text, b.visible = msg, true
}

func (b *fakeErrorBox) state() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text, b.visible
}

type fakeNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *fakeNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *fakeNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

type spyGateway struct {
	mu      sync.Mutex
	err     error
	signups []domain.SignupRequest
	logins  []domain.LoginRequest
}

func (g *spyGateway) Signup(_ context.Context, req domain.SignupRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.signups = append(g.signups, req)
	return g.err
}

func (g *spyGateway) Login(_ context.Context, req domain.LoginRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logins = append(g.logins, req)
	return g.err
}

func (g *spyGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.signups) + len(g.logins)
}
