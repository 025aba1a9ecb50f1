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

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		statusCode int
		want       string
	}{
		{http.StatusOK, "info"},
		{http.StatusNoContent, "info"},
		{http.StatusMovedPermanently, "info"},
		{http.StatusBadRequest, "warn"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
		{http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.want, getLogLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{name: "successful request logs info", statusCode: http.StatusOK, wantLevel: "info"},
		{name: "client error logs warn", statusCode: http.StatusBadRequest, wantLevel: "warn"},
		{name: "server error logs error", statusCode: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}

			router := gin.New()
			router.Use(RequestID(), RequestLogger(sink))
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.statusCode, w.Code)
			entries := sink.all()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, tt.statusCode, entries[0].StatusCode)
			assert.Equal(t, "/test", entries[0].Path)
			assert.NotEmpty(t, entries[0].RequestID)
		})
	}
}

func TestRequestLogger_NoSink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_CapturesUserAndError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sink := &recordingSink{}
	userID := primitive.NewObjectID()

	router := gin.New()
	router.Use(RequestID())
	router.Use(func(c *gin.Context) {
		setClaims(c, &dto.Claims{UserID: userID, Email: "ops@example.com", Role: model.RoleOperator})
		c.Next()
	})
	router.Use(RequestLogger(sink))
	router.GET("/test", func(c *gin.Context) {
		_ = c.Error(errors.New("catalog not loaded"))
		c.Status(http.StatusServiceUnavailable)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	entries := sink.all()
	require.Len(t, entries, 1)
	assert.Equal(t, userID.Hex(), entries[0].UserID)
	assert.Equal(t, "ops@example.com", entries[0].UserEmail)
	assert.Equal(t, "catalog not loaded", entries[0].Error)
}
