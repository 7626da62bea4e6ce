// Package dom binds the form handlers to page elements.
package dom

// Element IDs the pages must carry.
const (
	IDSignupForm      = "cadastroForm"
	IDName            = "nome"
	IDEmail           = "email"
	IDPassword        = "senha"
	IDConfirmPassword = "confirmar"
	IDError           = "error"
	IDLoginButton     = "loginBtn"
	IDForgotButton    = "forgotBtn"
)

// Controls says which handlers a page gets.
type Controls struct {
	Forgot bool
	Signup bool
	Login  bool
}

// Plan decides the bindings from the IDs present on the page. The forms
// report through the error container and are skipped without it; the
// forgot-password control never needs it.
func Plan(has func(id string) bool) Controls {
	c := Controls{Forgot: has(IDForgotButton)}
	if !has(IDError) {
		return c
	}

	c.Signup = has(IDSignupForm)
	c.Login = has(IDLoginButton)
	return c
}

func (c Controls) Count() int {
	n := 0
	for _, b := range []bool{c.Forgot, c.Signup, c.Login} {
		if b {
			n++
		}
	}
	return n
}
