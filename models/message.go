package models

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseKind tells the front end which branch of the decision policy produced a reply
type ResponseKind string

const (
    KindClarify           ResponseKind = "clarify"
    KindDiagnosis         ResponseKind = "diagnosis"
    KindOracleDiagnosis   ResponseKind = "oracle_diagnosis"
    KindFallbackDiagnosis ResponseKind = "fallback_diagnosis"
    KindGuidance          ResponseKind = "guidance"
)

// MessageChannel represents the communication channel
type MessageChannel string

const (
    ChannelWeb       MessageChannel = "web"
    ChannelWebSocket MessageChannel = "websocket"
)

// Sender of a conversation message
type Sender string

const (
    SenderUser Sender = "user"
    SenderBot  Sender = "bot"
)

// Message is one stored conversation turn
type Message struct {
    ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    SessionID   string             `bson:"session_id" json:"session_id"`
    Sender      Sender             `bson:"sender" json:"sender"`
    Text        string             `bson:"text" json:"text"`
    Kind        ResponseKind       `bson:"kind,omitempty" json:"kind,omitempty"`
    Condition   *Condition         `bson:"condition,omitempty" json:"condition,omitempty"`
    Suggestions []string           `bson:"suggestions,omitempty" json:"suggestions,omitempty"`
    Language    Language           `bson:"language" json:"language"`
    Channel     MessageChannel     `bson:"channel,omitempty" json:"channel,omitempty"`
    Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// ChatRequest is one user message sent to the chatbot
type ChatRequest struct {
    Message   string         `json:"message" binding:"required,max=4000"`
    SessionID string         `json:"session_id" binding:"omitempty,max=128"`
    Language  Language       `json:"language" binding:"omitempty,oneof=en ur"`
    // History is the caller's own view of the recent user messages. When it is
    // empty the stored session history is used instead.
    History []string       `json:"history,omitempty" binding:"omitempty,max=20,dive,max=4000"`
    Channel MessageChannel `json:"channel,omitempty"`
}

// ImageRequest asks for a diagnosis from a picture
type ImageRequest struct {
    ImageBase64 string   `json:"image" binding:"required"`
    Symptoms    string   `json:"symptoms" binding:"omitempty,max=4000"`
    SessionID   string   `json:"session_id" binding:"omitempty,max=128"`
    Language    Language `json:"language" binding:"omitempty,oneof=en ur"`
}

// AnalyzeRequest runs the pipeline without the decision policy
type AnalyzeRequest struct {
    Message string `json:"message" binding:"required,max=4000"`
}

// ChatResponse is the reply to one ChatRequest
type ChatResponse struct {
    SessionID   string          `json:"session_id"`
    Kind        ResponseKind    `json:"kind"`
    Response    string          `json:"response"`
    Understood  string          `json:"understood,omitempty"`
    Summary     string          `json:"summary,omitempty"`
    Condition   *Condition      `json:"condition,omitempty"`
    Suggestions []string        `json:"suggestions,omitempty"`
    Plan        []DayPlan       `json:"plan,omitempty"`
    Analysis    *ProcessedInput `json:"analysis,omitempty"`
    Actions     []Action        `json:"actions,omitempty"`
}

// Action is a quick reply the front end may render as a button
type Action struct {
    Type    string                 `json:"type"`
    Label   string                 `json:"label"`
    Payload map[string]interface{} `json:"payload,omitempty"`
}

// IsDiagnosis reports whether the response carries a condition to show
func (cr ChatResponse) IsDiagnosis() bool {
    switch cr.Kind {
    case KindDiagnosis, KindOracleDiagnosis, KindFallbackDiagnosis:
        return cr.Condition != nil
    }
    return false
}

// NewUserMessage builds the stored record of a user turn
func NewUserMessage(sessionID, text string, lang Language, channel MessageChannel) *Message {
    return &Message{
        SessionID: sessionID,
        Sender:    SenderUser,
        Text:      text,
        Language:  lang,
        Channel:   channel,
        Timestamp: time.Now(),
    }
}

// NewBotMessage builds the stored record of a bot reply
func NewBotMessage(sessionID string, resp *ChatResponse, lang Language, channel MessageChannel) *Message {
    return &Message{
        SessionID:   sessionID,
        Sender:      SenderBot,
        Text:        resp.Response,
        Kind:        resp.Kind,
        Condition:   resp.Condition,
        Suggestions: resp.Suggestions,
        Language:    lang,
        Channel:     channel,
        Timestamp:   time.Now(),
    }
}
