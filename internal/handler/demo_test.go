package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/todo-service/internal/extract"
	"github.com/angeloszaimis/todo-service/internal/handler"
	"github.com/angeloszaimis/todo-service/internal/rejection"
	"github.com/angeloszaimis/todo-service/internal/router"
)

var _ = Describe("DemoHandler", func() {
	var (
		h       *handler.DemoHandler
		rec     *httptest.ResponseRecorder
		tempDir string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "demo-test-*")
		Expect(err).NotTo(HaveOccurred())

		log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		h = handler.NewDemoHandler(log, extract.DefaultMaxBodyBytes, filepath.Join(tempDir, "README.md"))
		rec = httptest.NewRecorder()
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Describe("Hi", func() {
		It("answers with a plaintext greeting", func() {
			req := httptest.NewRequest(http.MethodGet, "/hi", nil)
			Expect(h.Hi(rec, req, router.Params{})).To(BeNil())

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(Equal("Hello, World!"))
		})
	})

	Describe("Hello", func() {
		It("echoes the name, host, and user agent", func() {
			req := httptest.NewRequest(http.MethodGet, "/hello/sean", nil)
			req.Host = "localhost:3030"
			req.Header.Set("User-Agent", "curl/8.0")

			Expect(h.Hello(rec, req, router.Params{"name": "sean"})).To(BeNil())
			Expect(rec.Code).To(Equal(http.StatusOK))

			var reply struct {
				Name  string `json:"name"`
				Host  string `json:"host"`
				Agent string `json:"agent"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Name).To(Equal("sean"))
			Expect(reply.Host).To(Equal("localhost:3030"))
			Expect(reply.Agent).To(Equal("curl/8.0"))
		})

		It("rejects a request without a user agent", func() {
			req := httptest.NewRequest(http.MethodGet, "/hello/sean", nil)
			req.Host = "localhost:3030"

			rej := h.Hello(rec, req, router.Params{"name": "sean"})
			Expect(rej).NotTo(BeNil())
			Expect(rej.Kind).To(Equal(rejection.MalformedParameter))
		})
	})

	Describe("Sleep", func() {
		It("answers no earlier than the requested delay", func() {
			req := httptest.NewRequest(http.MethodGet, "/sleep/1", nil)

			start := time.Now()
			Expect(h.Sleep(rec, req, router.Params{"seconds": uint64(1)})).To(BeNil())
			Expect(time.Since(start)).To(BeNumerically(">=", time.Second))

			Expect(rec.Body.String()).To(Equal("I waited 1 seconds!"))
		})

		It("answers immediately for zero seconds", func() {
			req := httptest.NewRequest(http.MethodGet, "/sleep/0", nil)

			start := time.Now()
			Expect(h.Sleep(rec, req, router.Params{"seconds": uint64(0)})).To(BeNil())
			Expect(time.Since(start)).To(BeNumerically("<", 500*time.Millisecond))
		})
	})

	Describe("Register", func() {
		It("echoes the posted employee", func() {
			req := jsonRequest(http.MethodPost, "/register", `{"name":"Sean","rate":2}`)
			Expect(h.Register(rec, req, router.Params{})).To(BeNil())

			Expect(rec.Code).To(Equal(http.StatusOK))

			var employee handler.Employee
			Expect(json.Unmarshal(rec.Body.Bytes(), &employee)).To(Succeed())
			Expect(employee).To(Equal(handler.Employee{Name: "Sean", Rate: 2}))
		})

		It("rejects a body without a name", func() {
			req := jsonRequest(http.MethodPost, "/register", `{"rate":2}`)
			rej := h.Register(rec, req, router.Params{})
			Expect(rej).NotTo(BeNil())
			Expect(rej.Kind).To(Equal(rejection.MalformedBody))
		})
	})

	Describe("Readme", func() {
		It("serves the file contents when present", func() {
			path := filepath.Join(tempDir, "README.md")
			Expect(os.WriteFile(path, []byte("# Todo Service\n"), 0644)).To(Succeed())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			Expect(h.Readme(rec, req, router.Params{})).To(BeNil())

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("# Todo Service"))
		})

		It("rejects as not found when the file is missing", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rej := h.Readme(rec, req, router.Params{})
			Expect(rej).NotTo(BeNil())
			Expect(rej.Kind).To(Equal(rejection.RouteNotFound))
		})
	})
})
