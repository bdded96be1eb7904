package middleware

import (
	"log"
	"net/http"

	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/Vantage-CRM/vantage-crm-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// methodToAction maps HTTP methods on preset routes to action names
var methodToAction = map[string]string{
	"POST": models.ActionCreatePreset,
}

// ActivityLoggingMiddleware logs preset mutations automatically.
// Must be used AFTER AuthMiddleware (which sets tenantID, userID, userEmail).
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip GET requests - we only log mutations
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		userID, userOK := GetUserIDFromContext(c)
		tenantID, tenantOK := GetTenantIDFromContext(c)
		userEmail, _ := GetUserEmailFromContext(c)

		if !userOK || !tenantOK {
			log.Printf("[activity-logging] warning: caller identity not in context")
			c.Next()
			return
		}

		// Execute the handler
		c.Next()

		action := methodToAction[c.Request.Method]
		// Controllers override for routes like POST /presets/:id/use
		if override, exists := c.Get("activityAction"); exists {
			if s, ok := override.(string); ok && s != "" {
				action = s
			}
		}
		if action == "" {
			return
		}

		// Resource identity is set by the controller once known
		resourceID := ""
		if raw, exists := c.Get("activityResourceID"); exists {
			if id, ok := raw.(uuid.UUID); ok {
				resourceID = id.String()
			} else if s, ok := raw.(string); ok {
				resourceID = s
			}
		}
		resourceName := c.GetString("activityResourceName")

		var payload map[string]any
		if raw, exists := c.Get("activityPayload"); exists {
			payload, _ = raw.(map[string]any)
		}

		statusCode := c.Writer.Status()
		if statusCode >= 200 && statusCode < 300 {
			services.LogActivity(services.LogActivityRequest{
				TenantID:     tenantID,
				UserID:       userID,
				UserEmail:    userEmail,
				Action:       action,
				ResourceType: models.ResourceTypePreset,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Payload:      payload,
				Status:       models.StatusSuccess,
				Context:      c,
			})

			log.Printf("[activity-logging] success: %s by %s", action, userEmail)
		} else {
			services.LogActivity(services.LogActivityRequest{
				TenantID:     tenantID,
				UserID:       userID,
				UserEmail:    userEmail,
				Action:       action,
				ResourceType: models.ResourceTypePreset,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Status:       models.StatusFailed,
				ErrorMessage: "Request failed with status " + http.StatusText(statusCode),
				Context:      c,
			})

			log.Printf("[activity-logging] failed: %s by %s - status %d", action, userEmail, statusCode)
		}
	}
}
