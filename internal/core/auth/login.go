package auth

import (
	"context"

	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
)

type LoginHandler struct {
	gw     domain.AuthGateway
	errBox ErrorDisplay
	log    logger.Logger
}

func NewLoginHandler(gw domain.AuthGateway, errBox ErrorDisplay, log logger.Logger) *LoginHandler {
	return &LoginHandler{
		gw:     gw,
		errBox: errBox,
		log:    log,
	}
}

func (h *LoginHandler) Submit(ctx context.Context, form domain.LoginForm) domain.Outcome {
	h.errBox.Clear()

	if err := h.gw.Login(ctx, form.Request()); err != nil {
		h.log.Warn("login: request failed", "email", form.Email, "error", err)
		h.errBox.Show(domain.MsgLoginFailed)
		return domain.FailureOutcome(err, domain.MsgLoginFailed)
	}

	// Token storage and redirect are not implemented; success has no visible effect.
	h.log.Info("login: accepted", "email", form.Email)

	return domain.Outcome{Kind: domain.OutcomeSuccess}
}

// ForgotPasswordHandler backs the "forgot password" control. It holds no
// gateway.
type ForgotPasswordHandler struct {
	notify Notifier
}

func NewForgotPasswordHandler(notify Notifier) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{notify: notify}
}

func (h *ForgotPasswordHandler) Activate() domain.Outcome {
	h.notify.Notify(domain.MsgForgotNotImplemented)
	return domain.Outcome{Kind: domain.OutcomeNotice, Message: domain.MsgForgotNotImplemented}
}
