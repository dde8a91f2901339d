// Package i18n provides internationalization support for the shoplist service.
// It handles translation of user-facing messages and error messages.
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
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "User Not registered",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.list_not_found":       "Shopping list not found",
			"error.shop_not_found":       "Shop not found",
			"error.product_not_found":    "Product not found",
			"error.item_not_found":       "List item not found",
			"error.validation_failed":    "Validation failed",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",

			// Success messages
			"success.comparison_done": "Price comparison completed successfully",
		},
		"es": {
			// Error messages
			"error.invalid_request":      "Solicitud inválida",
			"error.invalid_request_body": "Cuerpo de la solicitud inválido",
			"error.internal_error":       "Ocurrió un error inesperado",
			"error.unauthorized":         "No autorizado",
			"error.invalid_credentials":  "Usuario no registrado",
			"error.api_key_required":     "Se requiere una clave de API",
			"error.invalid_api_key":      "Clave de API inválida",
			"error.forbidden":            "Prohibido",
			"error.not_found":            "No encontrado",
			"error.rate_limit_exceeded":  "Demasiadas solicitudes, inténtelo de nuevo más tarde",
			"error.conflict":             "Conflicto",
			"error.list_not_found":       "Lista de compras no encontrada",
			"error.shop_not_found":       "Tienda no encontrada",
			"error.product_not_found":    "Producto no encontrado",
			"error.item_not_found":       "Artículo de la lista no encontrado",
			"error.validation_failed":    "Error de validación",
			"error.invalid_token":        "Token inválido o expirado",
			"error.token_required":       "Se requiere token de autenticación",

			// Success messages
			"success.comparison_done": "Comparación de precios completada con éxito",
		},
	}
}
