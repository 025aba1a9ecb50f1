package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		claims         *dto.Claims
		roles          []string
		expectedStatus int
	}{
		{
			name:           "admin passes admin-only route",
			claims:         &dto.Claims{Email: "a@example.com", Role: model.RoleAdmin},
			roles:          []string{model.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "operator rejected on admin-only route",
			claims:         &dto.Claims{Email: "o@example.com", Role: model.RoleOperator},
			roles:          []string{model.RoleAdmin},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "any of several roles",
			claims:         &dto.Claims{Email: "o@example.com", Role: model.RoleOperator},
			roles:          []string{model.RoleAdmin, model.RoleOperator},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no roles admits any authenticated operator",
			claims:         &dto.Claims{Email: "o@example.com", Role: model.RoleOperator},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthenticated request",
			roles:          []string{model.RoleAdmin},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.claims != nil {
					setClaims(c, tt.claims)
				}
				c.Next()
			})
			router.Use(RequireRole(tt.roles...))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), dto.ErrCodeForbidden)
			}
		})
	}
}
