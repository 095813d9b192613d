package controllers

import (
	"net/http"

	"github.com/Mourad-Gh-code/HydrationTime/services"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

// GetGoals returns today's goal (or a given ?date=) and the derived progress.
func (g *GoalController) GetGoals(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := c.DefaultQuery("date", utils.TodayDate())
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, progress, err := g.Svc.ProgressByDate(uid, date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal, "progress": progress})
}

type updateGoalInput struct {
	TargetML      float64 `json:"target_ml" binding:"required"`
	Date          string  `json:"date"`           // defaults to today
	UpdateDefault *bool   `json:"update_default"` // defaults to true
}

// UpdateGoal upserts the goal for a date. By default it also moves the
// standing default goal, matching the mobile client's behavior; pass
// update_default=false to set a one-off target.
func (g *GoalController) UpdateGoal(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input updateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := input.Date
	if date == "" {
		date = utils.TodayDate()
	}

	updateDefault := true
	if input.UpdateDefault != nil {
		updateDefault = *input.UpdateDefault
	}

	var goal any
	var err error
	if updateDefault {
		goal, err = g.Svc.SetGoalAndUpdateDefault(uid, input.TargetML, date)
	} else {
		goal, err = g.Svc.SetGoalForDate(uid, input.TargetML, date)
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (g *GoalController) History(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, err := g.Svc.History(uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}
