package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"digital-physician-backend/config"
	"digital-physician-backend/logger"
	"digital-physician-backend/models"
)

var (
	ErrOracleNotConfigured = errors.New("diagnosis oracle is not configured")
	ErrOracleUnavailable   = errors.New("diagnosis oracle is unavailable")
	ErrOracleBadResponse   = errors.New("diagnosis oracle returned an unusable response")
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	textTopP            = 0.9
	imageTemperature    = 0.2
	imageMaxTokens      = 1500
	maxResponseBytes    = 1 << 20
)

// OracleRequest is one text diagnosis request
type OracleRequest struct {
	Symptoms    string
	Language    models.Language
	Temperament string
	ExtraInfo   string
}

// DiagnosisOracle is the remote diagnosis service consulted when local
// matching is not enough
type DiagnosisOracle interface {
	Diagnose(ctx context.Context, req OracleRequest) (*models.Condition, error)
	AnalyzeImage(ctx context.Context, req models.ImageRequest) (*models.Condition, error)
}

// CredentialSource supplies the oracle credential. An empty string means the
// oracle is not configured.
type CredentialSource interface {
	OracleCredential(ctx context.Context) string
}

// AIService calls an OpenAI compatible chat completions endpoint
type AIService struct {
	baseURL      string
	model        string
	visionModel  string
	maxTokens    int
	temperature  float64
	timeout      time.Duration
	imageTimeout time.Duration

	credentials CredentialSource
	httpClient  *http.Client
	cache       *cache.Cache
	log         logger.Logger
}

func NewAIService(cfg config.AIConfig, credentials CredentialSource, log logger.Logger) *AIService {
	return &AIService{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		model:        cfg.Model,
		visionModel:  cfg.VisionModel,
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
		timeout:      cfg.Timeout,
		imageTimeout: cfg.ImageTimeout,
		credentials:  credentials,
		// per call deadlines come from the request context
		httpClient: &http.Client{},
		cache:      newResponseCache(cfg.CacheTTL),
		log:        log,
	}
}

// newResponseCache returns nil when caching is disabled
func newResponseCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		return nil
	}
	return cache.New(ttl, 10*time.Minute)
}

// IsConfigured reports whether a usable credential is available
func (s *AIService) IsConfigured(ctx context.Context) bool {
	return s.credentials.OracleCredential(ctx) != ""
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Diagnose asks the oracle for a condition matching a free text description
func (s *AIService) Diagnose(ctx context.Context, req OracleRequest) (*models.Condition, error) {
	key := s.credentials.OracleCredential(ctx)
	if key == "" {
		return nil, ErrOracleNotConfigured
	}

	lang := req.Language.Display()
	cacheKey := strings.Join([]string{string(lang), req.Symptoms, req.Temperament, req.ExtraInfo}, "\x00")
	if s.cache != nil {
		if x, found := s.cache.Get(cacheKey); found {
			c := x.(models.Condition)
			return &c, nil
		}
	}

	body := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(lang)},
			{Role: "user", Content: userPrompt(req.Symptoms, lang, req.Temperament, req.ExtraInfo)},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
		TopP:        textTopP,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content, err := s.complete(ctx, key, body)
	if err != nil {
		return nil, err
	}

	c, err := parseOracleCondition(content, req.Symptoms)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, *c, cache.DefaultExpiration)
	}
	return c, nil
}

// AnalyzeImage asks the oracle to diagnose from a base64 encoded picture
func (s *AIService) AnalyzeImage(ctx context.Context, req models.ImageRequest) (*models.Condition, error) {
	key := s.credentials.OracleCredential(ctx)
	if key == "" {
		return nil, ErrOracleNotConfigured
	}

	lang := req.Language.Display()
	prompt := "Please analyze this image for any skin conditions or health symptoms. Additional symptoms: " + req.Symptoms
	if lang == models.LanguageUrdu {
		prompt = "براہ کرم اس تصویر کا تجزیہ کریں اور کوئی بھی جلدی یا صحت کی علامات تلاش کریں۔ اضافی علامات: " + req.Symptoms
	}

	body := chatCompletionRequest{
		Model: s.visionModel,
		Messages: []chatMessage{
			{Role: "system", Content: imageSystemPrompt(lang)},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURL{URL: req.ImageBase64, Detail: "high"}},
			}},
		},
		Temperature: imageTemperature,
		MaxTokens:   imageMaxTokens,
	}

	ctx, cancel := context.WithTimeout(ctx, s.imageTimeout)
	defer cancel()

	content, err := s.complete(ctx, key, body)
	if err != nil {
		return nil, err
	}
	return parseOracleCondition(content, "Image analysis: "+req.Symptoms)
}

func (s *AIService) complete(ctx context.Context, key string, body chatCompletionRequest) (string, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode oracle request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+chatCompletionsPath, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to build oracle request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+key)

	start := time.Now()
	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.log.Warn("oracle", "Oracle request failed", map[string]interface{}{
			"model":    body.Model,
			"key":      MaskCredential(key),
			"error":    err.Error(),
			"duration": time.Since(start).String(),
		})
		return "", fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrOracleUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warn("oracle", "Oracle returned an error status", map[string]interface{}{
			"model":  body.Model,
			"key":    MaskCredential(key),
			"status": resp.StatusCode,
		})
		return "", fmt.Errorf("%w: status %d", ErrOracleUnavailable, resp.StatusCode)
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOracleBadResponse, err)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: no response generated", ErrOracleBadResponse)
	}

	s.log.Debug("oracle", "Oracle responded", map[string]interface{}{
		"model":    body.Model,
		"duration": time.Since(start).String(),
	})
	return result.Choices[0].Message.Content, nil
}

// jsonObjectRe spans from the first "{" to the last "}"
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

type oracleCondition struct {
	Name        *models.Bilingual `json:"name"`
	Diagnosis   *models.Bilingual `json:"diagnosis"`
	Treatment   *models.Bilingual `json:"treatment"`
	Avoid       *models.Bilingual `json:"avoid"`
	Temperament *models.Bilingual `json:"temperament"`
	Akhlat      *models.Bilingual `json:"akhlat"`
}

var oracleDefaults = oracleCondition{
	Name:        &models.Bilingual{En: "AI Generated Diagnosis", Ur: "AI سے تشخیص"},
	Diagnosis:   &models.Bilingual{En: "Analysis based on symptoms provided", Ur: "علامات کی بنیاد پر تجزیہ"},
	Treatment:   &models.Bilingual{En: "General wellness approach recommended", Ur: "عمومی صحت کا نقطہ نظر تجویز کیا گیا"},
	Avoid:       &models.Bilingual{En: "Avoid factors that worsen symptoms", Ur: "علامات بڑھانے والے عوامل سے بچیں"},
	Temperament: &models.Bilingual{En: "Balanced", Ur: "متوازن"},
	Akhlat:      &models.Bilingual{En: "Mixed Humours", Ur: "مختلط اخلاط"},
}

// parseOracleCondition pulls the JSON object out of a reply that may wrap it
// in prose. Missing fields get bilingual defaults.
func parseOracleCondition(content, symptoms string) (*models.Condition, error) {
	jsonStr := jsonObjectRe.FindString(content)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrOracleBadResponse)
	}

	var parsed oracleCondition
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracleBadResponse, err)
	}

	words := descriptionKeywords(symptoms)
	return &models.Condition{
		ID:          "oracle_" + uuid.NewString(),
		Name:        orDefault(parsed.Name, oracleDefaults.Name),
		Keywords:    models.Keywords{En: words, Ur: words},
		Diagnosis:   orDefault(parsed.Diagnosis, oracleDefaults.Diagnosis),
		Treatment:   orDefault(parsed.Treatment, oracleDefaults.Treatment),
		Avoid:       orDefault(parsed.Avoid, oracleDefaults.Avoid),
		Temperament: orDefault(parsed.Temperament, oracleDefaults.Temperament),
		Akhlat:      orDefault(parsed.Akhlat, oracleDefaults.Akhlat),
	}, nil
}

func orDefault(v, def *models.Bilingual) models.Bilingual {
	if v == nil || v.IsZero() {
		return *def
	}
	return *v
}

const responseFormat = `{
  "name": {"en": "English Name", "ur": "اردو نام"},
  "diagnosis": {"en": "English diagnosis", "ur": "اردو تشخیص"},
  "treatment": {"en": "English treatment", "ur": "اردو علاج"},
  "avoid": {"en": "English avoidance", "ur": "اردو پرہیز"},
  "temperament": {"en": "English temperament", "ur": "اردو مزاج"},
  "akhlat": {"en": "English humor", "ur": "اردو اخلاط"}
}`

func systemPrompt(lang models.Language) string {
	if lang == models.LanguageUrdu {
		return `آپ ایک تجربہ کار یونانی طب کے حکیم ہیں۔ مریض سے نرمی اور شفقت سے بات کریں اور ہر شکایت کا یونانی اصولوں کے مطابق تجزیہ کریں:
1. مزاج: گرم/ٹھنڈا اور خشک/تر
2. اخلاط: صفرا، بلغم، سودا یا خون میں خرابی
3. علاج: جڑی بوٹیاں، تیل اور غذائی تجاویز
4. پرہیز: کیا نہ کھائیں اور کیا نہ کریں
صرف JSON میں جواب دیں۔`
	}
	return `You are a friendly and experienced Unani medicine physician (Hakim). Speak with compassion and analyse every complaint according to Unani principles:
1. Temperament (Mizaj): hot/cold and dry/wet
2. Humours (Akhlat): imbalance of Yellow Bile (Safra), Phlegm (Balgham), Black Bile (Sauda) or Blood (Dam)
3. Treatment: natural herbal remedies, oils and dietary advice
4. Avoidance: dietary and lifestyle restrictions
Always respond in JSON.`
}

func imageSystemPrompt(lang models.Language) string {
	if lang == models.LanguageUrdu {
		return `آپ یونانی طب کے ماہر حکیم ہیں جو تصویر دیکھ کر جلد اور صحت کی حالت کی تشخیص کرتے ہیں۔ جلد کی رنگت، ساخت اور کسی بھی دھبے یا سوجن کا جائزہ لیں، مزاج اور اخلاط کا تعین کریں اور علاج اور پرہیز بتائیں۔ صرف JSON میں جواب دیں۔`
	}
	return `You are an expert Unani medicine physician (Hakim) who diagnoses skin and health conditions from images. Examine colour, texture and any spots or inflammation, determine temperament and humoral imbalance, and give treatment and avoidance advice. Always respond in JSON.`
}

func userPrompt(symptoms string, lang models.Language, temperament, extra string) string {
	var b strings.Builder
	if lang == models.LanguageUrdu {
		b.WriteString("مریض کی علامات: " + symptoms)
		if temperament != "" {
			b.WriteString("\nمریض کا بیان کردہ مزاج: " + temperament)
		}
		if extra != "" {
			b.WriteString("\nاضافی معلومات: " + extra)
		}
		b.WriteString("\n\nبراہ کرم اس JSON format میں جواب دیں:\n")
	} else {
		b.WriteString("Patient symptoms: " + symptoms)
		if temperament != "" {
			b.WriteString("\nPatient's reported temperament: " + temperament)
		}
		if extra != "" {
			b.WriteString("\nAdditional information: " + extra)
		}
		b.WriteString("\n\nPlease respond in this JSON format:\n")
	}
	b.WriteString(responseFormat)
	return b.String()
}
