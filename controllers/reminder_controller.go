package controllers

import (
	"net/http"

	"github.com/Mourad-Gh-code/HydrationTime/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Svc           *services.ReminderService
	Notifications *services.NotificationService
}

func NewReminderController(svc *services.ReminderService, notifications *services.NotificationService) *ReminderController {
	return &ReminderController{Svc: svc, Notifications: notifications}
}

// Schedule recomputes the reminder slots from the user's preferences and
// hands them to the scheduler collaborator.
func (r *ReminderController) Schedule(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	times, err := r.Svc.ScheduleForUser(uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduled": len(times), "times": times})
}

func (r *ReminderController) Cancel(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := r.Svc.CancelForUser(uid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reminders cancelled"})
}

func (r *ReminderController) Messages(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	msgs, err := r.Notifications.List(uid, 50)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
