package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barbexa/barbexa-api/internal/domain/reservation"
	"github.com/barbexa/barbexa-api/internal/middleware"
)

// identityFromContext materializa a identidade autenticada colocada no
// contexto pelo AuthMiddleware. Sempre por requisição, nunca global.
func identityFromContext(c *gin.Context) domain.Identity {
	return domain.Identity{
		UserID:   c.GetUint(middleware.ContextUserID),
		Username: c.GetString(middleware.ContextUsername),
		RoleCode: c.GetString(middleware.ContextUserRole),
	}
}
