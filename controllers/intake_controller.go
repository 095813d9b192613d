package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/services"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	Svc *services.IntakeService
}

func NewIntakeController(svc *services.IntakeService) *IntakeController {
	return &IntakeController{Svc: svc}
}

type addIntakeInput struct {
	AmountML  float64 `json:"amount_ml" binding:"required"`
	Timestamp string  `json:"timestamp"` // RFC3339, optional
}

func (i *IntakeController) AddIntake(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input addIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var at time.Time
	if input.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, input.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp, expected RFC3339"})
			return
		}
		at = parsed
	}

	intake, err := i.Svc.AddWaterIntake(uid, input.AmountML, at)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, intake)
}

// Today returns the current day's entries plus the running total.
func (i *IntakeController) Today(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today := utils.TodayDate()
	intakes, err := i.Svc.IntakesByDate(uid, today)
	if err != nil {
		fail(c, err)
		return
	}
	total, err := i.Svc.TotalByDate(uid, today)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": today, "total_ml": total, "intakes": intakes})
}

// All returns every intake entry for the user, most recent first.
func (i *IntakeController) All(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	intakes, err := i.Svc.ListIntakes(uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, intakes)
}

// History returns either one day (?date=) or the per-day totals of the last
// week by default.
func (i *IntakeController) History(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if date := c.Query("date"); date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		intakes, err := i.Svc.IntakesByDate(uid, date)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, intakes)
		return
	}

	start := c.DefaultQuery("start", utils.DateDaysAgo(6))
	if _, err := utils.ParseDate(start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	totals, err := i.Svc.DailyTotalsSince(uid, start)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (i *IntakeController) DeleteIntake(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := i.Svc.DeleteIntake(uid, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
