//go:build js && wasm

package main

import (
	"context"
	"strings"

	"amigofiel/internal/adapters/api"
	"amigofiel/internal/config"
	"amigofiel/internal/core/auth"
	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
	"amigofiel/internal/ui/dom"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	// Pages may point the handlers elsewhere with window.AUTH_API_URL.
	if u := dom.GlobalString("AUTH_API_URL"); u != "" {
		cfg.AuthAPIURL = strings.TrimRight(u, "/")
	}

	plan := dom.Plan(func(id string) bool {
		_, ok := dom.ByID(id)
		return ok
	})
	if plan.Count() == 0 {
		log.Warn("web: no form controls found on page")
		return
	}

	if _, ok := dom.ByID(dom.IDError); !ok {
		log.Warn("web: page has no error container, forms left unbound", "id", dom.IDError)
	}

	ctx := context.Background()

	if plan.Forgot {
		btn, _ := dom.ByID(dom.IDForgotButton)
		forgot := auth.NewForgotPasswordHandler(dom.Alert{})
		dom.On(btn, "click", false, func() { forgot.Activate() })
	}

	if plan.Signup || plan.Login {
		errEl, _ := dom.ByID(dom.IDError)
		errBox := dom.NewErrorBox(errEl)
		client := api.NewClient(cfg.AuthAPIURL, nil, log)

		if plan.Signup {
			form, _ := dom.ByID(dom.IDSignupForm)
			signup := auth.NewSignupHandler(client, errBox, dom.Alert{}, log)
			dom.On(form, "submit", true, func() {
				signup.Submit(ctx, domain.SignupForm{
					Name:            dom.Value(dom.IDName),
					Email:           dom.Value(dom.IDEmail),
					Password:        dom.Value(dom.IDPassword),
					ConfirmPassword: dom.Value(dom.IDConfirmPassword),
				})
			})
		}

		if plan.Login {
			btn, _ := dom.ByID(dom.IDLoginButton)
			login := auth.NewLoginHandler(client, errBox, log)
			dom.On(btn, "click", false, func() {
				login.Submit(ctx, domain.LoginForm{
					Email:    dom.Value(dom.IDEmail),
					Password: dom.Value(dom.IDPassword),
				})
			})
		}
	}

	log.Info("web: handlers bound", "controls", plan.Count(), "endpoint", cfg.AuthAPIURL)
	select {}
}
