package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"value": 1})
	})

	w := performRequest(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Metadata.RequestID)
	assert.NotEmpty(t, body.Metadata.Timestamp)
	assert.Equal(t, w.Header().Get("X-Request-ID"), body.Metadata.RequestID)
}

func TestFailEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/fail", func(c *gin.Context) {
		Fail(c, http.StatusNotFound, ErrNotFound)
	})

	w := performRequest(r, http.MethodGet, "/fail", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrNotFound, body.Error.Code)
	assert.Equal(t, GetMessage(ErrNotFound), body.Error.Message)
	assert.Empty(t, body.Error.Fields)
}

func TestFailWithFieldsEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/invalid", func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{
			"email": "email is required",
		})
	})

	w := performRequest(r, http.MethodGet, "/invalid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "email is required", body.Error.Fields["email"])
}

func TestRequestIDMiddleware_HonorsInboundHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{})
	})

	w := performRequest(r, http.MethodGet, "/ok", map[string]string{
		"X-Request-ID": "client-supplied-id",
	})

	assert.Equal(t, "client-supplied-id", w.Header().Get("X-Request-ID"))
}

func TestGetMessage_CoversAllCodes(t *testing.T) {
	codes := []ErrCode{
		ErrInvalidCredentials, ErrAccountLocked, ErrAccountInactive,
		ErrSessionInvalidated, ErrTokenRequired, ErrTokenInvalid,
		ErrForbidden, ErrAdminAccessOnly, ErrAdminUndeletable,
		ErrValidation, ErrInvalidID, ErrInvalidPayload, ErrPasswordPolicy,
		ErrDateRange, ErrNotFound, ErrConflict, ErrDependencyExists,
		ErrFileRequired, ErrUnsupportedFile, ErrFileTooLarge, ErrEmptyRoster,
		ErrRateLimitExceeded, ErrInternal,
	}
	for _, code := range codes {
		assert.NotEmpty(t, GetMessage(code), "missing message for %s", code)
	}
}
