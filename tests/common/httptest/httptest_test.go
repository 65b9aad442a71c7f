//go:build unit

package httptest

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPerformRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"value": body["value"],
			"auth":  c.GetHeader("Authorization"),
		})
	})

	w := PerformRequest(t, router, http.MethodPost, "/echo", map[string]string{"value": "abc"}, "tok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":"abc"`)
	assert.Contains(t, w.Body.String(), "Bearer tok")
}

func TestPerformRequestNoBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", func(c *gin.Context) {
		assert.Empty(t, c.GetHeader("Authorization"))
		assert.Empty(t, c.GetHeader("Content-Type"))
		c.Status(http.StatusNoContent)
	})

	w := PerformRequest(t, router, http.MethodGet, "/ping", nil, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
