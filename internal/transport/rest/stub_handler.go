package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
)

const maxBodyBytes = 1 << 20

type Response struct {
	Message string `json:"message,omitempty"`
}

// StubHandler stands in for the remote signup/login service. It checks the
// body shape, records the request and answers with a fixed status.
type StubHandler struct {
	rec *Recorder
	log logger.Logger

	signupStatus int
	loginStatus  int
}

func NewStubHandler(rec *Recorder, log logger.Logger, signupStatus, loginStatus int) *StubHandler {
	return &StubHandler{
		rec:          rec,
		log:          log,
		signupStatus: signupStatus,
		loginStatus:  loginStatus,
	}
}

func (h *StubHandler) Signup(w http.ResponseWriter, r *http.Request) {
	body, ok := h.read(w, r)
	if !ok {
		return
	}

	var req domain.SignupRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, &Response{Message: "invalid request body"})
		return
	}

	h.record(r, body)
	h.log.Info("stub: signup received", "request_id", r.Header.Get("X-Request-Id"), "email", req.Email, "status", h.signupStatus)

	writeJSON(w, h.signupStatus, &Response{Message: http.StatusText(h.signupStatus)})
}

func (h *StubHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, ok := h.read(w, r)
	if !ok {
		return
	}

	var req domain.LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, &Response{Message: "invalid request body"})
		return
	}

	h.record(r, body)
	h.log.Info("stub: login received", "request_id", r.Header.Get("X-Request-Id"), "email", req.Email, "status", h.loginStatus)

	writeJSON(w, h.loginStatus, &Response{Message: http.StatusText(h.loginStatus)})
}

func (h *StubHandler) read(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, &Response{Message: "unreadable request body"})
		return nil, false
	}
	return bytes.TrimSpace(body), true
}

func (h *StubHandler) record(r *http.Request, body []byte) {
	h.rec.Add(Received{
		Path:        r.URL.Path,
		RequestID:   r.Header.Get("X-Request-Id"),
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
		At:          time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, res *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
