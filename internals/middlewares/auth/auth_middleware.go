package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quadroescolar_backend/internals/configs"
	"quadroescolar_backend/internals/constants"
)

// AuthMiddleware valida o token da sessão e guarda no contexto apenas o que
// esta camada consome: a mantenedora dona dos registros e o papel do
// chamador. Gestão da sessão em si é responsabilidade de outro serviço.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		ownerID, _ := claims["owner_id"].(string)
		if strings.TrimSpace(ownerID) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - owner_id ausente no token")
		}
		role, _ := claims["role"].(string)
		if role == "" {
			role = constants.RoleUsuario
		}

		c.Locals("owner_id", ownerID)
		c.Locals("role", role)
		return c.Next()
	}
}

// OnlyAdmin restringe a rota a chamadores administrativos.
func OnlyAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Ação restrita a administradores")
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		if cookie := c.Cookies("access_token"); cookie != "" {
			return cookie, nil
		}
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header ausente")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header inválido")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil // token sem exp é aceito (emitido pelo serviço de sessão)
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return fiber.ErrUnauthorized
	}
	return nil
}
