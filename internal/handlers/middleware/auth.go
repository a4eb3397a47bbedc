package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/moogar0880/problems"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
	"github.com/rafabene/userhub-backend/internal/infrastructure/i18n"
)

const (
	// UserIDContextKey é a chave do id do usuário autenticado no contexto
	UserIDContextKey = "user_id"
	// UserRoleContextKey é a chave do papel do usuário autenticado no contexto
	UserRoleContextKey = "user_role"
)

// AuthMiddleware valida tokens JWT emitidos pelo provedor de autenticação
type AuthMiddleware struct {
	secret []byte
	log    ports.Logger
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(secret string, log ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret), log: log}
}

// Authenticate exige um Bearer token válido e popula id e papel no contexto
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWithProblem(c, http.StatusUnauthorized, "/problems/unauthorized", "title.unauthorized", "error.unauthorized")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			m.log.Debug("token rejected", "error", err)
			abortWithProblem(c, http.StatusUnauthorized, "/problems/unauthorized", "title.unauthorized", "error.unauthorized")
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			abortWithProblem(c, http.StatusUnauthorized, "/problems/unauthorized", "title.unauthorized", "error.unauthorized")
			return
		}

		role := entities.RoleUser
		if claimed, ok := claims["role"].(string); ok && entities.Role(claimed).IsValid() {
			role = entities.Role(claimed)
		}

		c.Set(UserIDContextKey, sub)
		c.Set(UserRoleContextKey, string(role))

		c.Next()
	}
}

// RequireRole exige que o papel autenticado seja pelo menos minRole
func (m *AuthMiddleware) RequireRole(minRole entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.Role(c.GetString(UserRoleContextKey))
		if !role.AtLeast(minRole) {
			abortWithProblem(c, http.StatusForbidden, "/problems/forbidden", "title.forbidden", "error.forbidden")
			return
		}
		c.Next()
	}
}

// RequireSelfOrRole permite acesso ao dono do recurso (:id na rota)
// ou a quem tiver pelo menos minRole
func (m *AuthMiddleware) RequireSelfOrRole(minRole entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("id") == c.GetString(UserIDContextKey) {
			c.Next()
			return
		}

		role := entities.Role(c.GetString(UserRoleContextKey))
		if !role.AtLeast(minRole) {
			abortWithProblem(c, http.StatusForbidden, "/problems/forbidden", "title.forbidden", "error.forbidden")
			return
		}
		c.Next()
	}
}

// AuthenticatedUserID retorna o id autenticado ou vazio
func AuthenticatedUserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}

// abortWithProblem responde um problem RFC 7807 traduzido e aborta a cadeia.
// Duplicado do pacote dto para não criar ciclo de import (dto depende
// das chaves de contexto deste pacote).
func abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, translate(c, detailKey))
	problem.Type = baseURL + problemType
	problem.Title = translate(c, titleKey)
	problem.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}

// translate resolve uma chave pelo serviço i18n do contexto, se presente
func translate(c *gin.Context, key string) string {
	service, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	i18nService, ok := service.(*i18n.Service)
	if !ok {
		return key
	}

	return i18nService.T(c.GetString(LanguageContextKey), key)
}
