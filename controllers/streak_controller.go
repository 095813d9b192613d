package controllers

import (
	"net/http"

	"github.com/Mourad-Gh-code/HydrationTime/services"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	Svc *services.StreakService
}

func NewStreakController(svc *services.StreakService) *StreakController {
	return &StreakController{Svc: svc}
}

func (s *StreakController) Range(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	streaks, err := s.Svc.Range(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, streaks)
}

func (s *StreakController) AchievedCount(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	count, err := s.Svc.AchievedCount(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "achieved_days": count})
}

// Current reports the running streak plus the longest run of the past year.
func (s *StreakController) Current(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	current, err := s.Svc.CurrentStreak(uid)
	if err != nil {
		fail(c, err)
		return
	}
	longest, err := s.Svc.LongestStreak(uid, utils.DateDaysAgo(364), utils.TodayDate())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"current_streak": current, "longest_streak": longest})
}
