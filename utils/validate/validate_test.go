package validate

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsValidActionKind(t *testing.T) {
	assert.True(t, IsValidActionKind("Churn Database"))
	assert.True(t, IsValidActionKind("Active Database"))
	assert.False(t, IsValidActionKind(""))
	assert.False(t, IsValidActionKind("churn database"))
	assert.False(t, IsValidActionKind("Dropdown Churn Action"))
}

func TestGetBoolQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  bool
	}{
		{"force=true", true},
		{"force=1", true},
		{"force=false", false},
		{"force=yes", false}, // 非標準布林值視為 false
		{"", false},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/home?"+tt.query, nil)
		assert.Equal(t, tt.want, GetBoolQuery(c, "force"), tt.query)
	}
}

func TestGetInt64Query(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/list?limit=25", nil)

	n, err := GetInt64Query(c, "limit", 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), n)

	n, err = GetInt64Query(c, "missing", 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), n)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/list?limit=abc", nil)
	_, err = GetInt64Query(c, "limit", 10)
	assert.Error(t, err)
}
