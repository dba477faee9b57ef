package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbexa/barbexa-api/internal/logger"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From mapeia um erro de caso de uso para a resposta HTTP. Falhas de
// negócio viram 4xx com o código e a mensagem do erro; qualquer outro
// erro é logado e vira 500 genérico.
func From(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		switch be.Kind {
		case KindForbidden:
			Forbidden(c, be.Code, be.Message)
		case KindConflict:
			Conflict(c, be.Code, be.Message)
		case KindNotFound:
			NotFound(c, be.Code, be.Message)
		default:
			BadRequest(c, be.Code, be.Message)
		}
		return
	}

	logger.Error.WithError(err).
		WithField("path", c.FullPath()).
		Error("unexpected error")
	Internal(c, "internal_error", "Erro interno do servidor.")
}
