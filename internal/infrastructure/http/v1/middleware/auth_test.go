package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appctx "skyfolio/internal/core/context"
)

type fakeValidator struct {
	user *appctx.UserContext
	err  error
}

func (f *fakeValidator) ValidateToken(string) (*appctx.UserContext, error) {
	return f.user, f.err
}

func authRouter(v JWTValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.Use(Auth(v))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": appctx.GetUserID(c.Request.Context())})
	})
	return router
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		validator  JWTValidator
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			validator:  &fakeValidator{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "token abc",
			validator:  &fakeValidator{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			validator:  &fakeValidator{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer good",
			validator:  &fakeValidator{user: &appctx.UserContext{UserID: "owner-1"}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authRouter(tt.validator)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "owner-1")
			}
		})
	}
}
