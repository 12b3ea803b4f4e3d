package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/readwise-api/api/types"
	"github.com/killallgit/readwise-api/internal/database"
	"github.com/killallgit/readwise-api/internal/services/cache"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func(t *testing.T) *types.Dependencies
		expectedStatus int
		expectedDB     string
		expectCache    bool
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				mc := cache.NewMemoryCache(1)
				t.Cleanup(mc.Stop)
				return &types.Dependencies{DB: db, CacheStats: mc}
			},
			expectedStatus: http.StatusOK,
			expectedDB:     "healthy",
			expectCache:    true,
		},
		{
			name: "without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus: http.StatusOK,
			expectedDB:     "not configured",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedDB:     "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			dbStatus, ok := response["database"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.expectedDB, dbStatus["status"])
			_, hasCache := response["cache"]
			assert.Equal(t, tt.expectCache, hasCache)
		})
	}
}

func TestGetDatabaseStatus_NilDeps(t *testing.T) {
	assert.Equal(t, "not configured", getDatabaseStatus(nil)["status"])
}
