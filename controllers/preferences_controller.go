package controllers

import (
	"net/http"

	"github.com/Mourad-Gh-code/HydrationTime/services"

	"github.com/gin-gonic/gin"
)

type PreferencesController struct {
	Svc       *services.PreferencesService
	Reminders *services.ReminderService
}

func NewPreferencesController(svc *services.PreferencesService, reminders *services.ReminderService) *PreferencesController {
	return &PreferencesController{Svc: svc, Reminders: reminders}
}

func (p *PreferencesController) Get(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	prefs, err := p.Svc.Get(uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (p *PreferencesController) Update(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := p.Svc.Update(uid, input)
	if err != nil {
		fail(c, err)
		return
	}

	// notification settings may have changed; rebuild the schedule
	if _, err := p.Reminders.ScheduleForUser(uid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /user/notifications/toggle
func (p *PreferencesController) ToggleNotifications(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := p.Svc.SetNotificationsEnabled(uid, req.Enabled); err != nil {
		fail(c, err)
		return
	}
	if _, err := p.Reminders.ScheduleForUser(uid); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}
