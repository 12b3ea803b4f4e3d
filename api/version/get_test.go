package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	oldVersion, oldCommit := Version, GitCommit
	Version, GitCommit = "1.2.3", "abc123"
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })

	router := gin.New()
	RegisterRoutes(router, nil)

	for _, path := range []string{"/", "/version"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Readwise Highlights API", response["name"])
		assert.Equal(t, "1.2.3", response["version"])
		assert.Equal(t, "abc123", response["commit"])
		assert.Equal(t, "running", response["status"])
	}
}
