package routes

import (
    "bytes"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/gorilla/websocket"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "digital-physician-backend/config"
    "digital-physician-backend/database"
    "digital-physician-backend/logger"
    "digital-physician-backend/models"
)

const adminToken = "admin-secret"

func init() {
    gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
    t.Helper()

    cfg := config.Default()
    cfg.AdminToken = adminToken

    router := gin.New()
    require.NoError(t, SetupRoutes(router, cfg, database.NewMemoryStores(), logger.NewNop()))
    return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
    t.Helper()

    var reader *bytes.Reader
    if body != nil {
        raw, err := json.Marshal(body)
        require.NoError(t, err)
        reader = bytes.NewReader(raw)
    } else {
        reader = bytes.NewReader(nil)
    }

    req := httptest.NewRequest(method, path, reader)
    req.Header.Set("Content-Type", "application/json")
    for k, v := range headers {
        req.Header.Set(k, v)
    }
    w := httptest.NewRecorder()
    router.ServeHTTP(w, req)
    return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
    t.Helper()
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func TestHealth(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodGet, "/health", nil, nil)
    require.Equal(t, http.StatusOK, w.Code)

    var body map[string]interface{}
    decode(t, w, &body)
    assert.Equal(t, "ok", body["status"])
    assert.Equal(t, "memory", body["db"])
    assert.Equal(t, false, body["oracle_configured"])
}

func TestChatGuidanceAndHistory(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodPost, "/api/v1/chat", gin.H{"message": "qwerty zxcvb asdf"}, nil)
    require.Equal(t, http.StatusOK, w.Code)

    var resp models.ChatResponse
    decode(t, w, &resp)
    assert.Equal(t, models.KindGuidance, resp.Kind)
    assert.NotEmpty(t, resp.Response)
    require.NotEmpty(t, resp.SessionID)

    w = doJSON(t, router, http.MethodGet, "/api/v1/history/"+resp.SessionID, nil, nil)
    require.Equal(t, http.StatusOK, w.Code)

    var history struct {
        SessionID string           `json:"session_id"`
        History   []models.Message `json:"history"`
        Count     int              `json:"count"`
    }
    decode(t, w, &history)
    assert.Equal(t, resp.SessionID, history.SessionID)
    require.Equal(t, 2, history.Count)
    assert.Equal(t, models.SenderUser, history.History[0].Sender)
    assert.Equal(t, "qwerty zxcvb asdf", history.History[0].Text)
    assert.Equal(t, models.SenderBot, history.History[1].Sender)
}

func TestChatRejectsBadRequests(t *testing.T) {
    router := newTestRouter(t)

    tests := []struct {
        name string
        body interface{}
    }{
        {name: "missing message", body: gin.H{}},
        {name: "blank message", body: gin.H{"message": "   "}},
        {name: "unknown language", body: gin.H{"message": "hello", "language": "fr"}},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            w := doJSON(t, router, http.MethodPost, "/api/v1/chat", tt.body, nil)
            assert.Equal(t, http.StatusBadRequest, w.Code)

            var body map[string]interface{}
            decode(t, w, &body)
            assert.Contains(t, body, "error")
        })
    }
}

func TestHistoryRejectsBadLimit(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodGet, "/api/v1/history/s1?limit=abc", nil, nil)
    assert.Equal(t, http.StatusBadRequest, w.Code)

    w = doJSON(t, router, http.MethodGet, "/api/v1/history/s1?limit=10", nil, nil)
    assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyze(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", gin.H{"message": "I have a headache"}, nil)
    require.Equal(t, http.StatusOK, w.Code)

    var body struct {
        Analysis models.ProcessedInput `json:"analysis"`
        Summary  string                `json:"summary"`
    }
    decode(t, w, &body)
    assert.Equal(t, "I have a headache", body.Analysis.OriginalText)
    assert.Equal(t, models.LanguageEnglish, body.Analysis.DetectedLanguage)
    assert.NotEmpty(t, body.Summary)
}

func TestAnalyzeImageFallsBackWithoutOracle(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodPost, "/api/v1/analyze-image", gin.H{"image": "aGVsbG8=", "symptoms": "red rash"}, nil)
    require.Equal(t, http.StatusOK, w.Code)

    var resp models.ChatResponse
    decode(t, w, &resp)
    assert.Equal(t, models.KindFallbackDiagnosis, resp.Kind)
    assert.NotNil(t, resp.Condition)

    w = doJSON(t, router, http.MethodPost, "/api/v1/analyze-image", gin.H{"symptoms": "red rash"}, nil)
    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConditions(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodGet, "/api/v1/conditions", nil, nil)
    require.Equal(t, http.StatusOK, w.Code)
    var list struct {
        Conditions []models.Condition `json:"conditions"`
        Count      int                `json:"count"`
    }
    decode(t, w, &list)
    assert.Equal(t, len(list.Conditions), list.Count)
    assert.Equal(t, "insomnia", list.Conditions[0].ID)

    w = doJSON(t, router, http.MethodGet, "/api/v1/conditions/headache", nil, nil)
    require.Equal(t, http.StatusOK, w.Code)
    var condition models.Condition
    decode(t, w, &condition)
    assert.Equal(t, "headache", condition.ID)

    w = doJSON(t, router, http.MethodGet, "/api/v1/conditions/nope", nil, nil)
    assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConditionPlan(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodGet, "/api/v1/conditions/headache/plan?lang=ur", nil, nil)
    require.Equal(t, http.StatusOK, w.Code)

    var body struct {
        ConditionID string           `json:"condition_id"`
        Language    models.Language  `json:"language"`
        Plan        []models.DayPlan `json:"plan"`
    }
    decode(t, w, &body)
    assert.Equal(t, "headache", body.ConditionID)
    assert.Equal(t, models.LanguageUrdu, body.Language)
    require.Len(t, body.Plan, 7)
    assert.Equal(t, 1, body.Plan[0].Day)
    assert.NotEmpty(t, body.Plan[0].Morning)
}

func TestConditionSearch(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodGet, "/api/v1/conditions/search?q=insomnia", nil, nil)
    require.Equal(t, http.StatusOK, w.Code)
    var condition models.Condition
    decode(t, w, &condition)
    assert.Equal(t, "insomnia", condition.ID)

    w = doJSON(t, router, http.MethodGet, "/api/v1/conditions/search?q=zzzz", nil, nil)
    assert.Equal(t, http.StatusNotFound, w.Code)

    w = doJSON(t, router, http.MethodGet, "/api/v1/conditions/search", nil, nil)
    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOracleSettings(t *testing.T) {
    router := newTestRouter(t)
    auth := map[string]string{"X-Admin-Token": adminToken}

    w := doJSON(t, router, http.MethodGet, "/api/v1/admin/settings/oracle", nil, nil)
    assert.Equal(t, http.StatusUnauthorized, w.Code)

    w = doJSON(t, router, http.MethodGet, "/api/v1/admin/settings/oracle", nil, auth)
    require.Equal(t, http.StatusOK, w.Code)
    var settings struct {
        Configured bool   `json:"configured"`
        APIKey     string `json:"api_key"`
    }
    decode(t, w, &settings)
    assert.False(t, settings.Configured)

    w = doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/oracle", gin.H{"api_key": "not a key"}, auth)
    assert.Equal(t, http.StatusBadRequest, w.Code)

    w = doJSON(t, router, http.MethodPut, "/api/v1/admin/settings/oracle", gin.H{"api_key": "sk-test-1234567890abcdef"}, auth)
    require.Equal(t, http.StatusOK, w.Code)
    decode(t, w, &settings)
    assert.True(t, settings.Configured)
    assert.Equal(t, "sk-test...cdef", settings.APIKey)

    w = doJSON(t, router, http.MethodGet, "/health", nil, nil)
    var health map[string]interface{}
    decode(t, w, &health)
    assert.Equal(t, true, health["oracle_configured"])
}

func TestNoRoute(t *testing.T) {
    router := newTestRouter(t)

    w := doJSON(t, router, http.MethodGet, "/api/v2/chat", nil, nil)
    assert.Equal(t, http.StatusNotFound, w.Code)
    assert.Contains(t, w.Body.String(), "/api/v2/chat")
}

func TestWebSocketChat(t *testing.T) {
    server := httptest.NewServer(newTestRouter(t))
    defer server.Close()

    url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws?session_id=ws-1"
    conn, _, err := websocket.DefaultDialer.Dial(url, nil)
    require.NoError(t, err)
    defer conn.Close()

    for i := 0; i < 2; i++ {
        require.NoError(t, conn.WriteJSON(models.ChatRequest{Message: "qwerty zxcvb asdf"}))

        var resp models.ChatResponse
        require.NoError(t, conn.ReadJSON(&resp))
        assert.Equal(t, "ws-1", resp.SessionID)
        assert.Equal(t, models.KindGuidance, resp.Kind)
    }

    require.NoError(t, conn.WriteJSON(models.ChatRequest{Message: "  "}))
    var failure map[string]string
    require.NoError(t, conn.ReadJSON(&failure))
    assert.Equal(t, "Failed to process message", failure["error"])
}

func TestWebSocketRejectsForeignOrigin(t *testing.T) {
    server := httptest.NewServer(newTestRouter(t))
    defer server.Close()

    url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws"
    header := http.Header{"Origin": []string{"https://evil.example"}}
    _, resp, err := websocket.DefaultDialer.Dial(url, header)
    require.Error(t, err)
    require.NotNil(t, resp)
    assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
