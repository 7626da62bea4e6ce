package auth

import (
	"context"

	"amigofiel/internal/adapters/validator"
	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
)

type SignupHandler struct {
	gw     domain.AuthGateway
	errBox ErrorDisplay
	notify Notifier
	log    logger.Logger
}

func NewSignupHandler(gw domain.AuthGateway, errBox ErrorDisplay, notify Notifier, log logger.Logger) *SignupHandler {
	return &SignupHandler{
		gw:     gw,
		errBox: errBox,
		notify: notify,
		log:    log,
	}
}

// Submit runs one signup attempt. A password mismatch is reported before any
// request is made; every remote failure shows the same message.
func (h *SignupHandler) Submit(ctx context.Context, form domain.SignupForm) domain.Outcome {
	h.errBox.Clear()

	if errs := validator.ValidateStruct(form); len(errs) > 0 {
		h.log.Debug("signup: validation failed", "fields", len(errs))
		h.errBox.Show(domain.MsgPasswordMismatch)
		return domain.Outcome{
			Kind:    domain.OutcomeInvalid,
			Message: domain.MsgPasswordMismatch,
			Err:     domain.ErrPasswordMismatch,
		}
	}

	if err := h.gw.Signup(ctx, form.Request()); err != nil {
		h.log.Warn("signup: request failed", "email", form.Email, "error", err)
		h.errBox.Show(domain.MsgSignupFailed)
		return domain.FailureOutcome(err, domain.MsgSignupFailed)
	}

	h.log.Info("signup: completed", "email", form.Email)
	h.notify.Notify(domain.MsgSignupSucceeded)

	return domain.Outcome{Kind: domain.OutcomeSuccess, Message: domain.MsgSignupSucceeded}
}
