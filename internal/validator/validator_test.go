package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

type samplePayload struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,min=2"`
}

func bindJSON(t *testing.T, body string) (map[string]string, *samplePayload) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var payload samplePayload
	fields := Bind(c, &payload)
	return fields, &payload
}

func TestBind_Valid(t *testing.T) {
	fields, payload := bindJSON(t, `{"email":"user@example.com","name":"Ada"}`)
	assert.Nil(t, fields)
	assert.Equal(t, "user@example.com", payload.Email)
	assert.Equal(t, "Ada", payload.Name)
}

func TestBind_FieldErrorsUseJSONTags(t *testing.T) {
	fields, _ := bindJSON(t, `{"email":"not-an-email","name":"A"}`)
	assert.NotNil(t, fields)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "name")
}

func TestBind_MissingFields(t *testing.T) {
	fields, _ := bindJSON(t, `{}`)
	assert.NotNil(t, fields)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "name")
}

func TestBind_MalformedJSON(t *testing.T) {
	fields, _ := bindJSON(t, `{"email":`)
	assert.NotNil(t, fields)
	assert.Contains(t, fields, "detail")
}
