package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
)

func TestAudit(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name     string
		claims   *dto.Claims
		err      error
		fields   map[string]interface{}
		validate func(*testing.T, *model.LogEntry)
	}{
		{
			name:   "records operator and fields",
			claims: &dto.Claims{UserID: userID, Email: "ops@example.com", Role: model.RoleOperator},
			fields: map[string]interface{}{"chargeable_weight_kg": 628.0},
			validate: func(t *testing.T, e *model.LogEntry) {
				assert.Equal(t, "info", e.Level)
				assert.Equal(t, userID.Hex(), e.UserID)
				assert.Equal(t, "ops@example.com", e.UserEmail)
				assert.Equal(t, 628.0, e.Fields["chargeable_weight_kg"])
				assert.Empty(t, e.Error)
			},
		},
		{
			name: "anonymous failure",
			err:  errors.New("invalid quantity"),
			validate: func(t *testing.T, e *model.LogEntry) {
				assert.Equal(t, "error", e.Level)
				assert.Equal(t, "invalid quantity", e.Error)
				assert.Empty(t, e.UserID)
				assert.Nil(t, e.Fields)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			sink := &recordingSink{}

			router := gin.New()
			router.Use(RequestID())
			router.POST("/api/quote", func(c *gin.Context) {
				if tt.claims != nil {
					setClaims(c, tt.claims)
				}
				Audit(sink, c, model.ActionQuote, "Quote computed", tt.err, tt.fields)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/quote", nil)
			req.Header.Set(RequestIDHeader, "audit-1")
			router.ServeHTTP(httptest.NewRecorder(), req)

			entries := sink.all()
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, model.ActionQuote, e.ActionType)
			assert.Equal(t, "Quote computed", e.Message)
			assert.Equal(t, "audit-1", e.RequestID)
			assert.Equal(t, http.MethodPost, e.Method)
			assert.Equal(t, "/api/quote", e.Path)
			tt.validate(t, e)
		})
	}
}

func TestAudit_NilSink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotPanics(t, func() {
		Audit(nil, c, model.ActionLogin, "login", nil, nil)
	})
}
