// Package i18n provides English and Korean messages for the freight service.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: messages}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to English and then to
// the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supported reports whether locale has its own message table.
func Supported(locale string) bool {
	_, ok := messages[locale]
	return ok
}

// GetLocale picks the first Accept-Language entry the service supports.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		lang, _, _ := strings.Cut(tag, "-")
		lang = strings.ToLower(lang)
		if Supported(lang) {
			return lang
		}
	}
	return DefaultLocale
}

var messages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:        "Invalid request",
		ErrKeyInvalidRequestBody:    "Invalid request body",
		ErrKeyInvalidInput:          "Invalid input",
		ErrKeyInternalError:         "An unexpected error occurred",
		ErrKeyUnauthorized:          "Unauthorized",
		ErrKeyInvalidCredentials:    "Invalid email or password",
		ErrKeyUserExists:            "An account with this email already exists",
		ErrKeyAPIKeyRequired:        "API key is required",
		ErrKeyInvalidAPIKey:         "Invalid API key",
		ErrKeyForbidden:             "Forbidden",
		ErrKeyNotFound:              "Not found",
		ErrKeyRateLimitExceeded:     "Too many requests, please try again later",
		ErrKeyConflict:              "Conflict",
		ErrKeyInvalidToken:          "Invalid or expired token",
		ErrKeyTokenRequired:         "Authentication token is required",
		ErrKeyTimeout:               "Request timed out",
		ErrKeyPartNotFound:          "No catalog part matches the model number",
		ErrKeyCatalogUnavailable:    "The parts catalog is not loaded",
		ErrKeyCatalogInvalid:        "The catalog file is invalid",
		ErrKeyUnsupportedCurrency:   "Unsupported currency",
		ErrKeyRateUnavailable:       "Exchange rate is temporarily unavailable",
		ErrKeyDatabaseNotConfigured: "This operation requires the database, which is disabled",
		ErrKeyUnknownPackaging:      "Unknown packaging type",
		ErrKeyAmbiguousModel:        "The model number matches several catalog parts, choose one of the candidates",

		MsgKeyEstimateDisclaimer: "This is an estimate. Final charges are set by the carrier at acceptance.",
		MsgKeyCatalogImported:    "Catalog imported",
	},
	"ko": {
		ErrKeyInvalidRequest:        "잘못된 요청입니다",
		ErrKeyInvalidRequestBody:    "요청 본문이 올바르지 않습니다",
		ErrKeyInvalidInput:          "입력값이 올바르지 않습니다",
		ErrKeyInternalError:         "예기치 않은 오류가 발생했습니다",
		ErrKeyUnauthorized:          "인증되지 않았습니다",
		ErrKeyInvalidCredentials:    "이메일 또는 비밀번호가 올바르지 않습니다",
		ErrKeyUserExists:            "이미 등록된 이메일입니다",
		ErrKeyAPIKeyRequired:        "API 키가 필요합니다",
		ErrKeyInvalidAPIKey:         "유효하지 않은 API 키입니다",
		ErrKeyForbidden:             "권한이 없습니다",
		ErrKeyNotFound:              "찾을 수 없습니다",
		ErrKeyRateLimitExceeded:     "요청이 너무 많습니다. 잠시 후 다시 시도하세요",
		ErrKeyConflict:              "충돌이 발생했습니다",
		ErrKeyInvalidToken:          "토큰이 유효하지 않거나 만료되었습니다",
		ErrKeyTokenRequired:         "인증 토큰이 필요합니다",
		ErrKeyTimeout:               "요청 시간이 초과되었습니다",
		ErrKeyPartNotFound:          "모델 번호와 일치하는 부품이 없습니다",
		ErrKeyCatalogUnavailable:    "부품 카탈로그가 로드되지 않았습니다",
		ErrKeyCatalogInvalid:        "카탈로그 파일이 올바르지 않습니다",
		ErrKeyUnsupportedCurrency:   "지원하지 않는 통화입니다",
		ErrKeyRateUnavailable:       "환율 정보를 일시적으로 가져올 수 없습니다",
		ErrKeyDatabaseNotConfigured: "데이터베이스가 비활성화되어 이 작업을 수행할 수 없습니다",
		ErrKeyUnknownPackaging:      "알 수 없는 포장 유형입니다",
		ErrKeyAmbiguousModel:        "모델 번호와 일치하는 부품이 여러 개입니다. 후보 중 하나를 선택하세요",

		MsgKeyEstimateDisclaimer: "본 금액은 예상치이며, 최종 운임은 항공사 접수 시 확정됩니다.",
		MsgKeyCatalogImported:    "카탈로그를 가져왔습니다",
	},
}
