package middleware

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"

    "digital-physician-backend/logger"
)

func init() {
    gin.SetMode(gin.TestMode)
}

func guarded(token string) *gin.Engine {
    r := gin.New()
    r.GET("/admin", RequireAdminToken(token), func(c *gin.Context) {
        c.Status(http.StatusNoContent)
    })
    return r
}

func TestRequireAdminToken(t *testing.T) {
    tests := []struct {
        name       string
        configured string
        header     string
        value      string
        want       int
    }{
        {name: "disabled", configured: "", header: adminTokenHeader, value: "x", want: http.StatusForbidden},
        {name: "missing", configured: "secret", want: http.StatusUnauthorized},
        {name: "wrong", configured: "secret", header: adminTokenHeader, value: "guess", want: http.StatusUnauthorized},
        {name: "header", configured: "secret", header: adminTokenHeader, value: "secret", want: http.StatusNoContent},
        {name: "bearer", configured: "secret", header: "Authorization", value: "Bearer secret", want: http.StatusNoContent},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            req := httptest.NewRequest(http.MethodGet, "/admin", nil)
            if tt.header != "" {
                req.Header.Set(tt.header, tt.value)
            }
            w := httptest.NewRecorder()

            guarded(tt.configured).ServeHTTP(w, req)

            assert.Equal(t, tt.want, w.Code)
        })
    }
}

func TestRequestIDAndLogger(t *testing.T) {
    r := gin.New()
    r.Use(RequestID(), RequestLogger(logger.NewNop()))
    r.GET("/ping", func(c *gin.Context) {
        c.String(http.StatusOK, c.GetString("request_id"))
    })

    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
    assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
    assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

    req := httptest.NewRequest(http.MethodGet, "/ping", nil)
    req.Header.Set(RequestIDHeader, "abc")
    w = httptest.NewRecorder()
    r.ServeHTTP(w, req)
    assert.Equal(t, "abc", w.Body.String())
}

func TestLimitBodySize(t *testing.T) {
    r := gin.New()
    r.Use(LimitBodySize(8))
    r.POST("/echo", func(c *gin.Context) {
        var body map[string]string
        if err := c.ShouldBindJSON(&body); err != nil {
            c.Status(http.StatusRequestEntityTooLarge)
            return
        }
        c.Status(http.StatusOK)
    })

    w := httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"message":"far too long"}`)))
    assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

    w = httptest.NewRecorder()
    r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`)))
    assert.Equal(t, http.StatusOK, w.Code)
}
