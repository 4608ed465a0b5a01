package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubTokenizer struct{}

func (stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "good", nil
}

func (stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return map[string]interface{}{ClaimSessionID: "abc"}, nil
}

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Authoriz(stubTokenizer{}), func(c *gin.Context) {
		id, ok := SessionID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"No header", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic good", http.StatusUnauthorized},
		{"Missing token", "Bearer", http.StatusUnauthorized},
		{"Bad token", "Bearer bad", http.StatusUnauthorized},
		{"Good token", "Bearer good", http.StatusOK},
		{"Lower case scheme", "bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "abc", rec.Body.String())
			}
		})
	}
}

func TestSessionIDWithoutClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := SessionID(c)
	assert.False(t, ok)
}
