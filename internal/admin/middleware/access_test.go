package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

type fakeVerifier struct {
	valid string
	err   error
}

func (f *fakeVerifier) VerifyCode(_ context.Context, code string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return code == f.valid, nil
}

func gatedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAccessCode_MissingHeader(t *testing.T) {
	r := gatedRouter(RequireAccessCode(&fakeVerifier{valid: "secret"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAccessCode_InvalidCode(t *testing.T) {
	r := gatedRouter(RequireAccessCode(&fakeVerifier{valid: "secret"}))

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set("X-Admin-Code", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAccessCode_ValidCode(t *testing.T) {
	r := gatedRouter(RequireAccessCode(&fakeVerifier{valid: "secret"}))

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set("X-Admin-Code", "secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAccessCode_VerifierFailure(t *testing.T) {
	r := gatedRouter(RequireAccessCode(&fakeVerifier{err: errors.New("db down")}))

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set("X-Admin-Code", "secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNotConfigured(t *testing.T) {
	r := gatedRouter(NotConfigured())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRateLimit_ExhaustedBucket(t *testing.T) {
	r := gatedRouter(RateLimit(rate.Limit(0.001), 2))

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		assert.Equal(t, want, w.Code, "request %d", i)
	}
}
