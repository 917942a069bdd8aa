package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"digital-physician-backend/config"
	"digital-physician-backend/database"
	"digital-physician-backend/logger"
	"digital-physician-backend/models"
	"digital-physician-backend/utils"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrEmptyImage   = errors.New("image is empty")
)

// each stored user turn is followed by one bot reply
const historyFetchFactor = 2

// ChatbotService turns one user message into one reply. Every message is
// handled on its own; the only carried state is the recent history handed to
// the oracle.
type ChatbotService struct {
	processor *InputProcessor
	oracle    DiagnosisOracle
	messages  database.MessageStore
	matching  config.MatchingConfig
	log       logger.Logger
}

func NewChatbotService(processor *InputProcessor, oracle DiagnosisOracle, messages database.MessageStore, matching config.MatchingConfig, log logger.Logger) *ChatbotService {
	return &ChatbotService{
		processor: processor,
		oracle:    oracle,
		messages:  messages,
		matching:  matching,
		log:       log,
	}
}

func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	channel := req.Channel
	if channel == "" {
		channel = models.ChannelWeb
	}

	history := s.recentHistory(ctx, sessionID, req.History)

	processed, err := s.processor.Process(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to process message: %w", err)
	}

	lang := req.Language
	if lang == "" {
		lang = processed.DetectedLanguage
	}
	lang = lang.Display()

	resp := &models.ChatResponse{
		SessionID:  sessionID,
		Understood: understanding(processed, lang),
		Summary:    Summary(processed, lang),
		Analysis:   processed,
	}

	top, matched := processed.TopCondition()
	switch {
	case matched && processed.Confidence > s.matching.DiagnoseThreshold:
		if processed.Confidence < s.matching.ClarifyBelow && len(processed.ExtractedSymptoms) < s.matching.ClarifyMaxSymptoms {
			s.clarify(resp, top, lang)
		} else {
			s.diagnose(resp, models.KindDiagnosis, top, lang)
		}
	case len(processed.ExtractedSymptoms) > 0:
		s.consultOracle(ctx, resp, processed, history, lang)
	default:
		s.guide(resp, text, lang)
	}

	s.log.Info("chatbot", "Message processed", map[string]interface{}{
		"session_id": sessionID,
		"kind":       resp.Kind,
		"symptoms":   len(processed.ExtractedSymptoms),
		"confidence": processed.Confidence,
		"language":   processed.DetectedLanguage,
	})

	s.persist(ctx, models.NewUserMessage(sessionID, text, lang, channel), models.NewBotMessage(sessionID, resp, lang, channel))
	return resp, nil
}

// AnalyzeImage diagnoses from a picture. Oracle failures fall back to a
// general image assessment.
func (s *ChatbotService) AnalyzeImage(ctx context.Context, req models.ImageRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.ImageBase64) == "" {
		return nil, ErrEmptyImage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	lang := req.Language.Display()

	resp := &models.ChatResponse{SessionID: sessionID}

	c, err := s.analyzeImage(ctx, req)
	if err != nil {
		s.log.Warn("chatbot", "Image analysis failed, using fallback", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		fallback := ImageFallback(req.Symptoms)
		s.diagnose(resp, models.KindFallbackDiagnosis, &fallback, lang)
		resp.Response = replies.imageFallback.in(lang)
	} else {
		s.diagnose(resp, models.KindOracleDiagnosis, c, lang)
		resp.Response = replies.imageDiagnosis.in(lang)
	}

	shared := replies.imageShared.in(lang)
	if req.Symptoms != "" {
		shared += ": " + req.Symptoms
	}
	s.persist(ctx, models.NewUserMessage(sessionID, shared, lang, models.ChannelWeb), models.NewBotMessage(sessionID, resp, lang, models.ChannelWeb))
	return resp, nil
}

// History returns the stored messages of a session, oldest first
func (s *ChatbotService) History(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	if s.messages == nil {
		return []models.Message{}, nil
	}
	return s.messages.History(ctx, sessionID, limit)
}

func (s *ChatbotService) analyzeImage(ctx context.Context, req models.ImageRequest) (*models.Condition, error) {
	if s.oracle == nil {
		return nil, ErrOracleNotConfigured
	}
	return s.oracle.AnalyzeImage(ctx, req)
}

func (s *ChatbotService) clarify(resp *models.ChatResponse, c *models.Condition, lang models.Language) {
	resp.Kind = models.KindClarify
	resp.Response = fmt.Sprintf(replies.clarify.in(lang), c.Name.In(lang)) + "\n\n" + replies.followUp.in(lang)
	resp.Suggestions = FollowUpQuestions(c.ID, lang, s.matching.FollowUpQuestions)
	resp.Actions = quickReplies(resp.Suggestions)
}

func (s *ChatbotService) diagnose(resp *models.ChatResponse, kind models.ResponseKind, c *models.Condition, lang models.Language) {
	resp.Kind = kind
	resp.Condition = c
	resp.Plan = GenerateTreatmentPlan(c, lang)
	switch kind {
	case models.KindDiagnosis:
		resp.Response = fmt.Sprintf(replies.diagnosis.in(lang), c.Name.In(lang))
	default:
		resp.Response = replies.deepAnalysis.in(lang)
	}
	resp.Actions = []models.Action{
		{
			Type:    "show_treatment",
			Label:   replies.showTreatment.in(lang),
			Payload: map[string]interface{}{"condition_id": c.ID},
		},
		{
			Type:  "new_concern",
			Label: replies.newConcern.in(lang),
		},
	}
}

// consultOracle asks the oracle when symptoms were found but nothing in the
// table matched well enough. Any oracle failure is answered with the canned
// comprehensive fallback.
func (s *ChatbotService) consultOracle(ctx context.Context, resp *models.ChatResponse, p *models.ProcessedInput, history []string, lang models.Language) {
	turns := make([]string, 0, len(history)+1)
	turns = append(turns, history...)
	fullContext := strings.Join(append(turns, p.OriginalText), " ")

	req := OracleRequest{
		Symptoms:    fullContext,
		Language:    lang,
		Temperament: string(p.EmotionalContext),
		ExtraInfo: fmt.Sprintf(
			"Intelligent analysis detected: %s. Input type: %s. Language: %s. Confidence: %.2f. "+
				"User seems to have specific symptoms but no exact database match. "+
				"Provide comprehensive Unani treatment based on symptom patterns.",
			strings.Join(p.ExtractedSymptoms, ", "), p.InputType, p.DetectedLanguage, p.Confidence,
		),
	}

	c, err := s.diagnoseRemote(ctx, req)
	if err != nil {
		s.log.Warn("chatbot", "Oracle diagnosis failed, using fallback", map[string]interface{}{
			"session_id": resp.SessionID,
			"error":      err.Error(),
		})
		fallback := ComprehensiveFallback(fullContext)
		s.diagnose(resp, models.KindFallbackDiagnosis, &fallback, lang)
		return
	}
	s.diagnose(resp, models.KindOracleDiagnosis, c, lang)
}

func (s *ChatbotService) diagnoseRemote(ctx context.Context, req OracleRequest) (*models.Condition, error) {
	if s.oracle == nil {
		return nil, ErrOracleNotConfigured
	}
	return s.oracle.Diagnose(ctx, req)
}

func (s *ChatbotService) guide(resp *models.ChatResponse, raw string, lang models.Language) {
	resp.Kind = models.KindGuidance
	resp.Response = replies.guidance.in(lang)
	resp.Suggestions = GuidanceQuestions(raw, lang)
	resp.Actions = quickReplies(resp.Suggestions)
}

// recentHistory prefers the caller's history and otherwise loads the last
// user messages of the session
func (s *ChatbotService) recentHistory(ctx context.Context, sessionID string, given []string) []string {
	window := s.matching.HistoryWindow
	if window <= 0 {
		return nil
	}

	if len(given) > 0 {
		history := make([]string, 0, window)
		for _, h := range given {
			if h = strings.TrimSpace(h); h != "" {
				history = append(history, h)
			}
		}
		return lastN(history, window)
	}

	if s.messages == nil {
		return nil
	}
	stored, err := s.messages.History(ctx, sessionID, window*historyFetchFactor)
	if err != nil {
		s.log.Warn("chatbot", "Failed to load session history", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil
	}

	var history []string
	for _, m := range stored {
		if m.Sender == models.SenderUser {
			history = append(history, m.Text)
		}
	}
	return lastN(history, window)
}

// persist stores the exchange. Failures are logged and never fail the reply.
func (s *ChatbotService) persist(ctx context.Context, msgs ...*models.Message) {
	if s.messages == nil {
		return
	}
	for _, m := range msgs {
		if err := s.messages.Save(ctx, m); err != nil {
			s.log.Error("chatbot", "Failed to save message", map[string]interface{}{
				"session_id": m.SessionID,
				"sender":     m.Sender,
				"error":      err,
			})
			return
		}
	}
}

func understanding(p *models.ProcessedInput, lang models.Language) string {
	var shown []string
	for _, tag := range p.ExtractedSymptoms {
		if !utils.IsAnnotation(tag) {
			shown = append(shown, tag)
		}
	}

	var tmpl, empty bilingualText
	switch p.EmotionalContext {
	case models.EmotionSevere, models.EmotionUrgent:
		tmpl, empty = replies.understandSevere, replies.understandSevereEmpty
	case models.EmotionWorried:
		tmpl, empty = replies.understandWorried, replies.understandWorriedEmpty
	default:
		tmpl, empty = replies.understand, replies.understandEmpty
	}

	listed := strings.Join(firstN(shown, 3), ", ")
	if listed == "" {
		listed = empty.in(lang)
	}
	return fmt.Sprintf(tmpl.in(lang), listed)
}

func quickReplies(suggestions []string) []models.Action {
	actions := make([]models.Action, 0, len(suggestions))
	for _, q := range suggestions {
		actions = append(actions, models.Action{
			Type:    "quick_reply",
			Label:   q,
			Payload: map[string]interface{}{"message": q},
		})
	}
	return actions
}

func lastN(in []string, n int) []string {
	if len(in) <= n {
		return in
	}
	return in[len(in)-n:]
}

type bilingualText struct {
	en, ur string
}

func (t bilingualText) in(lang models.Language) string {
	if lang.Display() == models.LanguageUrdu {
		return t.ur
	}
	return t.en
}

var replies = struct {
	understand, understandEmpty                bilingualText
	understandSevere, understandSevereEmpty    bilingualText
	understandWorried, understandWorriedEmpty  bilingualText
	clarify, followUp, guidance                bilingualText
	diagnosis, deepAnalysis                    bilingualText
	imageShared, imageDiagnosis, imageFallback bilingualText
	showTreatment, newConcern                  bilingualText
}{
	understand: bilingualText{
		en: "I understand your concern! Let me see: %s Acting like a traditional Hakim to give you the best treatment...",
		ur: "آپ کا مسئلہ سمجھ آ گیا! دیکھتے ہیں: %s یونانی طب کے حکیم کی طرح بہترین علاج دے رہا ہوں...",
	},
	understandEmpty: bilingualText{en: "Analyzing your health", ur: "آپ کی صحت کی جانچ"},
	understandSevere: bilingualText{
		en: "I understand you're experiencing significant discomfort. Your symptoms: %s Finding the best Unani treatment for you...",
		ur: "میں سمجھ رہا ہوں کہ آپ کو کافی تکلیف ہو رہی ہے۔ آپ کی علامات: %s میں آپ کے لیے بہترین یونانی علاج تلاش کر رہا ہوں...",
	},
	understandSevereEmpty: bilingualText{en: "Comprehensive analysis in progress", ur: "تفصیلی جانچ جاری"},
	understandWorried: bilingualText{
		en: "Don't worry, I'm here to help you feel better. What you've described: %s Preparing proper Unani medicine treatment...",
		ur: "پریشان نہ ہوں، میں آپ کی مدد کروں گا۔ آپ کی بتائی گئی علامات: %s یونانی طب کے مطابق صحیح علاج تیار کر رہا ہوں...",
	},
	understandWorriedEmpty: bilingualText{en: "Health assessment underway", ur: "آپ کی صحت کا جائزہ"},
	clarify: bilingualText{
		en: "I believe you might have %s.",
		ur: "میں سمجھ گیا کہ آپ کو %s ہو سکتا ہے۔",
	},
	followUp: bilingualText{
		en: "Excellent! Now I have a good understanding of your issue. Just need a few more details for the most effective treatment:",
		ur: "بہت اچھا! اب مجھے یقین سے معلوم ہے آپ کا مسئلہ کیا ہے۔ بہتر علاج کے لیے بس کچھ اور باتیں جاننا چاہتا ہوں:",
	},
	guidance: bilingualText{
		en: "I can sense you're experiencing something uncomfortable. To help you properly, I need a bit more detail. These questions might guide you:",
		ur: "آپ کی بات سے لگتا ہے آپ کو کوئی تکلیف ہے۔ مجھے بہتر مدد کے لیے تھوڑی اور تفصیل چاہیے۔ یہ سوالات آپ کی رہنمائی کر سکتے ہیں:",
	},
	diagnosis: bilingualText{
		en: "Perfect! I've identified your health issue.\nDiagnosis: You have %s.\nHere's your complete Unani medicine treatment:",
		ur: "بہترین! میں نے آپ کا مسئلہ پکڑ لیا ہے۔\nتشخیص: آپ کو %s ہے۔\nیونانی طب کے مطابق مکمل علاج یہ ہے:",
	},
	deepAnalysis: bilingualText{
		en: "Excellent! I've done a deep analysis of your symptoms.\nDiagnosis: Here's your complete Unani treatment:",
		ur: "واہ! میں نے آپ کی علامات کا گہرا تجزیہ کیا ہے۔\nتشخیص: یہ ہے آپ کا مکمل یونانی علاج:",
	},
	imageShared: bilingualText{en: "Shared an image for diagnosis", ur: "تصویر شیئر کی گئی"},
	imageDiagnosis: bilingualText{
		en: "Wonderful! Image analysis complete!\nI've thoroughly examined your image.\nBased on Unani medicine principles, here's your complete treatment:",
		ur: "واہ! تصویری تشخیص مکمل ہو گئی!\nمیں نے آپ کی تصویر کا تفصیلی جائزہ لیا ہے۔\nیونانی طب کے اصولوں کے مطابق یہ ہے آپ کا مکمل علاج:",
	},
	imageFallback: bilingualText{
		en: "I can see your image clearly!\nIf you tell me about your symptoms or concerns, I can give you much better treatment recommendations.\nFor example: What's bothering you? Since when? How does it feel?",
		ur: "آپ کی تصویر واضح دکھائی دے رہی ہے!\nاگر آپ اپنی علامات یا پریشانیوں کے بارے میں کچھ بتائیں گے تو میں آپ کو بہت بہتر علاج دے سکوں گا۔\nمثلاً: کیا تکلیف ہے؟ کب سے ہے؟ کیسا محسوس ہوتا ہے؟",
	},
	showTreatment: bilingualText{en: "View 7-day treatment plan", ur: "سات دن کا علاج دیکھیں"},
	newConcern:    bilingualText{en: "Describe another concern", ur: "کوئی اور مسئلہ بتائیں"},
}
