package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"copro-backend/internal/auth"
	"copro-backend/internal/database/models"
	"copro-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RawJSON is sent as the request body verbatim, for payloads a struct cannot express
// such as an explicit null.
type RawJSON string

// HTTPTestSuite wraps a bare gin engine for handler tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing. The engine resolves context values through
// the request the same way the production router does.
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.ContextWithFallback = true

	return &HTTPTestSuite{
		Router: router,
	}
}

// AsIdentity returns a middleware that authenticates every request as the given identity,
// setting the same context keys as the auth middleware.
func AsIdentity(identity *models.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.IdentityKey, identity)
		c.Set(auth.UserIDKey, identity.ID)
		c.Set(logger.EmailKey, identity.Email)
		c.Set(logger.UserTypeKey, string(identity.Partition))
		c.Next()
	}
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, encodeBody(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

func encodeBody(body interface{}) io.Reader {
	switch b := body.(type) {
	case nil:
		return nil
	case RawJSON:
		return strings.NewReader(string(b))
	default:
		jsonBytes, _ := json.Marshal(b)
		return bytes.NewReader(jsonBytes)
	}
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// ErrorBody mirrors the JSON error envelope returned by the API
type ErrorBody struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Field   string                 `json:"field"`
	Details map[string]interface{} `json:"details"`
}

// AssertErrorResponse asserts the status and the machine-readable code of an error
// response, returning the decoded body for further checks. An empty code is not checked.
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedCode string) ErrorBody {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	var body ErrorBody
	err := json.Unmarshal(recorder.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.NotEmpty(t, body.Error)

	if expectedCode != "" {
		assert.Equal(t, expectedCode, body.Code)
	}
	return body
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}

// Bearer builds an Authorization header map for the given token
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
