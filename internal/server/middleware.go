package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spiten/spiten/internal/auth/token"
)

const contextClaimsKey = "token_claims"

func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", false
	}
	scheme, raw, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// AdminRequired verifies the bearer token before the handler runs.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, err := s.authsvc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

// SuperadminRequired verifies the bearer token and the superadmin role claim.
func (s *Server) SuperadminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, err := s.authsvc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if claims.Role != token.RoleSuperadmin {
			AbortWithError(c, ErrForbidden)
			return
		}

		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

func claimsFromContext(c *gin.Context) (*token.Claims, bool) {
	value, ok := c.Get(contextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
