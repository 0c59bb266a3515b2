package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/angeloszaimis/todo-service/internal/extract"
	"github.com/angeloszaimis/todo-service/internal/rejection"
	"github.com/angeloszaimis/todo-service/internal/router"
)

// Employee is the /register echo payload.
type Employee struct {
	Name string `json:"name"`
	Rate uint32 `json:"rate"`
}

func (e Employee) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
	)
}

type helloReply struct {
	Name  string `json:"name"`
	Host  string `json:"host"`
	Agent string `json:"agent"`
}

// DemoHandler serves the stateless demonstration endpoints.
type DemoHandler struct {
	logger       *slog.Logger
	maxBodyBytes int64
	readmePath   string
}

func NewDemoHandler(logger *slog.Logger, maxBodyBytes int64, readmePath string) *DemoHandler {
	return &DemoHandler{
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
		readmePath:   readmePath,
	}
}

// Readme serves the readme file from the configured path.
func (h *DemoHandler) Readme(w http.ResponseWriter, r *http.Request, _ router.Params) *rejection.Rejection {
	info, err := os.Stat(h.readmePath)
	if err != nil || info.IsDir() {
		return rejection.Wrap(rejection.RouteNotFound, err)
	}

	http.ServeFile(w, r, h.readmePath)
	return nil
}

func (h *DemoHandler) Hi(w http.ResponseWriter, r *http.Request, _ router.Params) *rejection.Rejection {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello, World!"))
	return nil
}

// Hello greets the captured name, echoing the caller's host and user-agent
// headers. Both must be present.
func (h *DemoHandler) Hello(w http.ResponseWriter, r *http.Request, p router.Params) *rejection.Rejection {
	host := r.Host
	agent := r.UserAgent()
	if host == "" {
		return rejection.Wrap(rejection.MalformedParameter, errors.New("missing host header"))
	}
	if agent == "" {
		return rejection.Wrap(rejection.MalformedParameter, errors.New("missing user-agent header"))
	}

	writeJSON(w, http.StatusOK, helloReply{
		Name:  p.String("name"),
		Host:  host,
		Agent: agent,
	})
	return nil
}

// Sleep suspends the request for the validated number of seconds and then
// reports how long it waited. The bound on the capture keeps this endpoint
// from hanging the service; no shared resource is held while sleeping.
func (h *DemoHandler) Sleep(w http.ResponseWriter, r *http.Request, p router.Params) *rejection.Rejection {
	seconds := p.Uint("seconds")
	time.Sleep(time.Duration(seconds) * time.Second)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "I waited %d seconds!", seconds)
	return nil
}

// Register echoes the posted employee back as JSON.
func (h *DemoHandler) Register(w http.ResponseWriter, r *http.Request, _ router.Params) *rejection.Rejection {
	var employee Employee
	if rej := extract.JSONBody(r, h.maxBodyBytes, &employee); rej != nil {
		return rej
	}

	h.logger.Debug("Registered employee", slog.String("name", employee.Name))
	writeJSON(w, http.StatusOK, employee)
	return nil
}
