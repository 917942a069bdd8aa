package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
    "github.com/gorilla/websocket"

    "digital-physician-backend/logger"
    "digital-physician-backend/models"
    "digital-physician-backend/services"
)

const maxWebSocketMessageBytes = 64 << 10

type WebSocketController struct {
    chatbotService *services.ChatbotService
    upgrader       websocket.Upgrader
    log            logger.Logger
}

// NewWebSocketController accepts upgrades from the allowed origins. A "*"
// entry allows every origin.
func NewWebSocketController(chatbotService *services.ChatbotService, allowedOrigins []string, log logger.Logger) *WebSocketController {
    allowed := make(map[string]bool, len(allowedOrigins))
    for _, o := range allowedOrigins {
        allowed[o] = true
    }

    return &WebSocketController{
        chatbotService: chatbotService,
        upgrader: websocket.Upgrader{
            CheckOrigin: func(r *http.Request) bool {
                origin := r.Header.Get("Origin")
                return origin == "" || allowed["*"] || allowed[origin]
            },
        },
        log: log,
    }
}

type wsError struct {
    Error   string `json:"error"`
    Details string `json:"details,omitempty"`
}

// HandleWebSocket reads ChatRequest frames and answers each with a
// ChatResponse. All frames of one connection share a session.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
    conn, err := wc.upgrader.Upgrade(c.Writer, c.Request, nil)
    if err != nil {
        wc.log.Warn("websocket", "WebSocket upgrade failed", map[string]interface{}{"error": err.Error()})
        return
    }
    defer conn.Close()
    conn.SetReadLimit(maxWebSocketMessageBytes)

    sessionID := c.Query("session_id")
    if sessionID == "" {
        sessionID = uuid.NewString()
    }
    wc.log.Debug("websocket", "Client connected", map[string]interface{}{"session_id": sessionID})

    for {
        var req models.ChatRequest
        if err := conn.ReadJSON(&req); err != nil {
            if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
                wc.log.Warn("websocket", "Read error", map[string]interface{}{
                    "session_id": sessionID,
                    "error":      err.Error(),
                })
            }
            return
        }

        req.SessionID = sessionID
        req.Channel = models.ChannelWebSocket
        if req.Language != "" && req.Language != models.LanguageEnglish && req.Language != models.LanguageUrdu {
            req.Language = ""
        }

        response, err := wc.chatbotService.ProcessMessage(c.Request.Context(), req)
        if err != nil {
            if writeErr := conn.WriteJSON(wsError{Error: "Failed to process message", Details: err.Error()}); writeErr != nil {
                return
            }
            continue
        }

        if err := conn.WriteJSON(response); err != nil {
            wc.log.Warn("websocket", "Write error", map[string]interface{}{
                "session_id": sessionID,
                "error":      err.Error(),
            })
            return
        }
    }
}
