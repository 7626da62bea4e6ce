package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	xterm "golang.org/x/term"

	"amigofiel/internal/adapters/api"
	"amigofiel/internal/config"
	"amigofiel/internal/core/auth"
	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
	"amigofiel/internal/ui/term"
)

const usage = `Usage:
  authcli signup -name NAME -email EMAIL [-password PW -confirm PW]
  authcli login  -email EMAIL [-password PW]
  authcli forgot`

type app struct {
	gw     domain.AuthGateway
	log    logger.Logger
	stdout io.Writer
	stderr io.Writer
	secret func(prompt string) (string, error)
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{
		gw:     api.NewClient(cfg.AuthAPIURL, nil, log, api.WithRequestIDs()),
		log:    log,
		stdout: os.Stdout,
		stderr: os.Stderr,
		secret: stdinSecret(os.Stdin, os.Stderr),
	}

	os.Exit(a.run(ctx, os.Args[1:]))
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.stderr, usage)
		return 2
	}

	errBox := term.NewErrorLine(a.stderr)
	notice := term.NewNotice(a.stdout)

	var out domain.Outcome
	switch args[0] {
	case "signup":
		fs := flag.NewFlagSet("signup", flag.ContinueOnError)
		fs.SetOutput(a.stderr)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "e-mail address")
		password := fs.String("password", "", "password (prompted when empty)")
		confirm := fs.String("confirm", "", "password confirmation (prompted when empty)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		pw, ok := a.prompt(*password, "Senha: ")
		if !ok {
			return 1
		}
		cf, ok := a.prompt(*confirm, "Confirmar senha: ")
		if !ok {
			return 1
		}

		h := auth.NewSignupHandler(a.gw, errBox, notice, a.log)
		out = h.Submit(ctx, domain.SignupForm{
			Name:            *name,
			Email:           *email,
			Password:        pw,
			ConfirmPassword: cf,
		})

	case "login":
		fs := flag.NewFlagSet("login", flag.ContinueOnError)
		fs.SetOutput(a.stderr)
		email := fs.String("email", "", "e-mail address")
		password := fs.String("password", "", "password (prompted when empty)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		pw, ok := a.prompt(*password, "Senha: ")
		if !ok {
			return 1
		}

		h := auth.NewLoginHandler(a.gw, errBox, a.log)
		out = h.Submit(ctx, domain.LoginForm{Email: *email, Password: pw})

	case "forgot":
		out = auth.NewForgotPasswordHandler(notice).Activate()

	default:
		fmt.Fprintf(a.stderr, "unknown command %q\n%s\n", args[0], usage)
		return 2
	}

	a.log.Debug("authcli: done", "command", args[0], "outcome", out.Kind.String())
	if !out.OK() {
		return 1
	}
	return 0
}

func (a *app) prompt(given, label string) (string, bool) {
	if given != "" {
		return given, true
	}

	v, err := a.secret(label)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to read password: %v\n", err)
		return "", false
	}
	return v, true
}

// stdinSecret reads without echo from a terminal, or one line from a pipe.
func stdinSecret(in *os.File, prompt io.Writer) func(string) (string, error) {
	lines := bufio.NewReader(in)

	return func(label string) (string, error) {
		fd := int(in.Fd())
		if xterm.IsTerminal(fd) {
			fmt.Fprint(prompt, label)
			b, err := xterm.ReadPassword(fd)
			fmt.Fprintln(prompt)
			return string(b), err
		}

		line, err := lines.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
