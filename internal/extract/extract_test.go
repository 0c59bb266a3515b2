package extract_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/todo-service/internal/extract"
	"github.com/angeloszaimis/todo-service/internal/rejection"
	"github.com/angeloszaimis/todo-service/internal/store"
)

func TestExtract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Extract Suite")
}

var _ = Describe("Uint", func() {
	It("parses a plain unsigned integer", func() {
		n, rej := extract.Uint("42")
		Expect(rej).To(BeNil())
		Expect(n).To(Equal(uint64(42)))
	})

	DescribeTable("rejects anything else as a malformed parameter",
		func(raw string) {
			_, rej := extract.Uint(raw)
			Expect(rej).NotTo(BeNil())
			Expect(rej.Kind).To(Equal(rejection.MalformedParameter))
		},
		Entry("letters", "abc"),
		Entry("negative", "-1"),
		Entry("decimal", "1.5"),
		Entry("empty", ""),
	)
})

var _ = Describe("BoundedSeconds", func() {
	It("accepts the bounds of the closed interval", func() {
		for _, raw := range []string{"0", "5"} {
			n, rej := extract.BoundedSeconds(raw, 5)
			Expect(rej).To(BeNil())
			Expect(n).To(BeNumerically("<=", 5))
		}
	})

	It("rejects values past the bound without clamping", func() {
		_, rej := extract.BoundedSeconds("6", 5)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.OutOfRange))
	})

	It("rejects non-numeric input as malformed", func() {
		_, rej := extract.BoundedSeconds("soon", 5)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.MalformedParameter))
	})
})

var _ = Describe("ParseListOptions", func() {
	It("defaults to no effect when fields are absent", func() {
		opts, rej := extract.ParseListOptions(url.Values{})
		Expect(rej).To(BeNil())
		Expect(opts.Offset).To(Equal(0))
		Expect(opts.Limit).To(Equal(extract.UnlimitedLimit))
	})

	It("decodes both fields", func() {
		opts, rej := extract.ParseListOptions(url.Values{"offset": {"3"}, "limit": {"5"}})
		Expect(rej).To(BeNil())
		Expect(opts.Offset).To(Equal(3))
		Expect(opts.Limit).To(Equal(5))
	})

	DescribeTable("rejects malformed values",
		func(values url.Values) {
			_, rej := extract.ParseListOptions(values)
			Expect(rej).NotTo(BeNil())
			Expect(rej.Kind).To(Equal(rejection.MalformedQuery))
		},
		Entry("non-numeric offset", url.Values{"offset": {"first"}}),
		Entry("negative limit", url.Values{"limit": {"-2"}}),
	)
})

var _ = Describe("JSONBody", func() {
	newRequest := func(contentType, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return req
	}

	It("decodes a valid body", func() {
		req := newRequest("application/json", `{"id":1,"text":"test 1","completed":false}`)

		var todo store.Todo
		rej := extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)
		Expect(rej).To(BeNil())
		Expect(todo).To(Equal(store.Todo{ID: 1, Text: "test 1", Completed: false}))
	})

	It("accepts a content type with a charset parameter", func() {
		req := newRequest("application/json; charset=utf-8", `{"id":1,"text":"x"}`)

		var todo store.Todo
		Expect(extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)).To(BeNil())
	})

	It("rejects a missing content type", func() {
		req := newRequest("", `{"id":1,"text":"x"}`)

		var todo store.Todo
		rej := extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.MalformedBody))
	})

	It("rejects a body over the size cap as too large", func() {
		huge := `{"id":1,"text":"` + strings.Repeat("a", extract.DefaultMaxBodyBytes) + `"}`
		req := newRequest("application/json", huge)

		var todo store.Todo
		rej := extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.PayloadTooLarge))
	})

	It("rejects a wrongly typed field as malformed", func() {
		req := newRequest("application/json", `{"id":"one","text":"x"}`)

		var todo store.Todo
		rej := extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.MalformedBody))
	})

	It("rejects a body failing schema validation", func() {
		req := newRequest("application/json", `{"id":1,"completed":true}`)

		var todo store.Todo
		rej := extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.MalformedBody))
	})

	It("rejects truncated JSON", func() {
		req := newRequest("application/json", `{"id":1,`)

		var todo store.Todo
		rej := extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.MalformedBody))
	})

	It("handles an empty body as malformed rather than panicking", func() {
		req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(nil))
		req.Header.Set("Content-Type", "application/json")

		var todo store.Todo
		rej := extract.JSONBody(req, extract.DefaultMaxBodyBytes, &todo)
		Expect(rej).NotTo(BeNil())
		Expect(rej.Kind).To(Equal(rejection.MalformedBody))
	})
})
