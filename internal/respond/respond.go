// Package respond writes the JSON payloads shared by handlers and middleware.
package respond

import (
	"taskflow/internal/apperror"
	"taskflow/internal/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const langKey = "lang"

type ErrorResponse struct {
	Error string        `json:"error"`
	Code  apperror.Code `json:"code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func SetLang(c *gin.Context, lang string) {
	c.Set(langKey, lang)
}

func Lang(c *gin.Context) string {
	if lang := c.GetString(langKey); lang != "" {
		return lang
	}
	return translator.LanguageEn
}

// Error writes err as {error, code} with the status of its code. Errors outside the
// taxonomy are logged and hidden behind a generic internal error.
func Error(c *gin.Context, tr *translator.Translator, err error) {
	code, body := build(c, tr, err)
	_ = c.Error(err)
	c.JSON(code, body)
}

// Abort is Error followed by c.Abort.
func Abort(c *gin.Context, tr *translator.Translator, err error) {
	code, body := build(c, tr, err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, body)
}

func Message(c *gin.Context, tr *translator.Translator, status int, messageID string) {
	c.JSON(status, MessageResponse{Message: tr.Message(messageID, Lang(c))})
}

func build(c *gin.Context, tr *translator.Translator, err error) (int, ErrorResponse) {
	appErr, ok := apperror.As(err)
	if !ok {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		appErr = apperror.New(apperror.CodeInternal, apperror.MsgInternal)
	}
	return appErr.Code.HTTPStatus(), ErrorResponse{
		Error: tr.Message(appErr.MessageID, Lang(c)),
		Code:  appErr.Code,
	}
}
