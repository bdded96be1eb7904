package services

import (
	"encoding/json"
	"log"

	"github.com/Vantage-CRM/vantage-crm-backend/config"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityLogService handles activity logging
type ActivityLogService struct{}

// NewActivityLogService creates a new activity log service
func NewActivityLogService() *ActivityLogService {
	return &ActivityLogService{}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	TenantID     uuid.UUID      // Tenant the action happened in
	UserID       uuid.UUID      // Who performed the action
	UserEmail    string         // User's email
	Action       string         // ActionCreatePreset, ActionUsePreset, etc.
	ResourceType string         // ResourceTypePreset
	ResourceID   string         // ID of the resource
	ResourceName string         // Human readable name (preset name)
	Payload      map[string]any // Request body snapshot for mutations
	Status       string         // StatusSuccess or StatusFailed
	ErrorMessage string         // Error details if failed
	Context      *gin.Context   // For IP and User-Agent extraction
}

// LogActivity logs a user action to the database
// Automatically captures IP address and User-Agent from context
func (s *ActivityLogService) LogActivity(req LogActivityRequest) error {
	if req.UserID == uuid.Nil {
		log.Printf("[activity-log] warning: UserID is nil for action %s", req.Action)
		return nil // Don't fail the request if logging fails
	}

	ipAddress := extractClientIP(req.Context)

	userAgent := ""
	if req.Context != nil {
		userAgent = req.Context.GetHeader("User-Agent")
	}

	// Marshal payload to JSONB
	var payloadJSON []byte
	if req.Payload != nil {
		data, err := json.Marshal(req.Payload)
		if err != nil {
			log.Printf("[activity-log] failed to marshal payload: %v", err)
			payloadJSON = []byte("{}")
		} else {
			payloadJSON = data
		}
	}

	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	activityLog := models.ActivityLog{
		TenantID:     req.TenantID,
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Payload:      payloadJSON,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.CrmGorm.WithContext(ctx).Create(&activityLog).Error; err != nil {
		log.Printf("[activity-log] failed to create activity log: %v", err)
		// Don't fail the request if logging fails - return nil
		return nil
	}

	log.Printf("[activity-log] %s: %s/%s/%s by %s", req.Action, req.ResourceType, req.ResourceID, req.ResourceName, req.UserEmail)
	return nil
}

// extractClientIP extracts the client IP address from the request
// Checks X-Forwarded-For, X-Real-IP, then RemoteAddr
func extractClientIP(c *gin.Context) string {
	if c == nil {
		return ""
	}

	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return forwardedFor
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	return c.RemoteIP()
}

// Global instance
var activityLogService *ActivityLogService

// GetActivityLogService returns the global activity log service
func GetActivityLogService() *ActivityLogService {
	if activityLogService == nil {
		activityLogService = NewActivityLogService()
	}
	return activityLogService
}

// LogActivity logs an activity using the global service
func LogActivity(req LogActivityRequest) error {
	return GetActivityLogService().LogActivity(req)
}
