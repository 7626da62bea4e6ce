// Package domain
package domain

import "errors"

const (
	MsgPasswordMismatch     = "As senhas não coincidem"
	MsgSignupFailed         = "Erro ao cadastrar. Tente novamente."
	MsgSignupSucceeded      = "Cadastro realizado com sucesso!"
	MsgLoginFailed          = "E-mail ou senha incorretos"
	MsgForgotNotImplemented = "Função de recuperação de senha não implementada."
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeInvalid
	OutcomeRejected
	OutcomeUnreachable
	OutcomeNotice
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRejected:
		return "rejected"
	case OutcomeUnreachable:
		return "unreachable"
	case OutcomeNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// Outcome is the result of one handler activation. Message is what the user
// was shown, if anything.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Err     error
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess || o.Kind == OutcomeNotice
}

// FailureOutcome classifies err into Rejected or Unreachable. Anything not
// recognized as a rejection counts as unreachable.
func FailureOutcome(err error, msg string) Outcome {
	kind := OutcomeUnreachable
	if errors.Is(err, ErrRejected) {
		kind = OutcomeRejected
	}
	return Outcome{Kind: kind, Message: msg, Err: err}
}
