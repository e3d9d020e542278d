package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"txlens/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		seen string
		w    *httptest.ResponseRecorder
		req  *http.Request
	)

	BeforeEach(func() {
		seen = ""
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/v1/transactions", nil)
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
		})
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
	})

	It("should generate a request id", func() {
		Expect(seen).NotTo(BeEmpty())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	When("the client sends a request id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "client-id")
		})

		It("should keep it", func() {
			Expect(seen).To(Equal("client-id"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("client-id"))
		})
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should log the response status", func() {
		core, logs := observer.New(zap.InfoLevel)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		hdlr := middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(next)
		hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

		req := httptest.NewRequest("GET", "/metrics", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-1")
		w := httptest.NewRecorder()
		hdlr.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusTeapot))
		Expect(logs.Len()).To(Equal(1))
		fields := logs.All()[0].ContextMap()
		Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
		Expect(fields).To(HaveKeyWithValue("path", "/metrics"))
		Expect(fields).To(HaveKeyWithValue("request_id", "req-1"))
	})
})
