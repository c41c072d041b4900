package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/locumconnect/locum-backend/internal/authctx"
	"github.com/locumconnect/locum-backend/internal/config"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired passes admins through, checking the JWT role claim first and
// the config admin-email list as a bootstrap fallback, then the DB role.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if authctx.GetRole(c) == models.RoleAdmin {
			return c.Next()
		}
		if contains(adminEmails, authctx.GetEmail(c)) {
			return c.Next()
		}

		// Claims can lag a role change; the row is authoritative.
		if userID, err := authctx.GetUserID(c); err == nil {
			var user models.User
			if err := db.First(&user, "id = ?", userID).Error; err == nil && user.Role == models.RoleAdmin {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

// RoleRequired passes only identities whose role claim matches.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authctx.GetRole(c) == role {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: role + " access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
