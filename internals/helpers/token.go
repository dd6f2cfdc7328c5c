package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"quadroescolar_backend/internals/constants"
)

// GetOwnerID lê a mantenedora ativa colocada no contexto pelo middleware de
// auth. Toda operação dos stores é particionada por esse valor.
func GetOwnerID(c *fiber.Ctx) (string, error) {
	ownerID, _ := c.Locals("owner_id").(string)
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Mantenedora não identificada na sessão")
	}
	return ownerID, nil
}

// IsAdmin informa se o chamador tem papel administrativo.
func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == constants.RoleAdmin
}
