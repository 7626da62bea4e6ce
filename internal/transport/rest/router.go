// Package rest
package rest

import (
	"net/http"

	"amigofiel/internal/domain"
	"amigofiel/internal/transport/rest/middleware"
)

type RouterDeps struct {
	Stub           *StubHandler
	AllowedOrigins []string
}

func NewRouter(deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.CORS(deps.AllowedOrigins))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST "+domain.SignupPath, deps.Stub.Signup)
	mux.HandleFunc("POST "+domain.LoginPath, deps.Stub.Login)

	return globalMw.Apply(mux)
}
