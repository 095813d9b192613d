package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/services"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"github.com/gin-gonic/gin"
)

type DrinkTypeController struct {
	Types  *services.DrinkTypeService
	Intake *services.IntakeService
}

func NewDrinkTypeController(types *services.DrinkTypeService, intake *services.IntakeService) *DrinkTypeController {
	return &DrinkTypeController{Types: types, Intake: intake}
}

func (d *DrinkTypeController) List(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	types, err := d.Types.List(uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

type drinkTypeInput struct {
	Name            string  `json:"name"`
	Color           string  `json:"color"`
	IconName        string  `json:"icon_name"`
	DefaultAmountML float64 `json:"default_amount_ml"`
}

func (d *DrinkTypeController) Create(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input drinkTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt, err := d.Types.Create(uid, input.Name, input.Color, input.IconName, input.DefaultAmountML)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dt)
}

func (d *DrinkTypeController) Update(c *gin.Context) {
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

	var input drinkTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt, err := d.Types.Update(uid, uint(id), input.Name, input.Color, input.IconName, input.DefaultAmountML)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dt)
}

func (d *DrinkTypeController) Delete(c *gin.Context) {
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

	if err := d.Types.Delete(uid, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Logs returns the typed-entry history: one day with ?date=, otherwise a
// ?period= / ?from=&?to= range, newest first.
func (d *DrinkTypeController) Logs(c *gin.Context) {
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
		logs, err := d.Intake.LogsByDate(uid, date)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	from, to, ok := rangeFromQuery(c)
	if !ok {
		return
	}
	logs, err := d.Intake.LogsInRange(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// LoggedDates returns the distinct days with at least one typed entry in the
// requested range.
func (d *DrinkTypeController) LoggedDates(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := rangeFromQuery(c)
	if !ok {
		return
	}
	dates, err := d.Intake.LoggedDates(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "dates": dates})
}

// DeleteLogs clears one day's typed entries (?date= required). Hydration
// totals for the day are unaffected.
func (d *DrinkTypeController) DeleteLogs(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`date` query parameter required"})
		return
	}
	if err := d.Intake.DeleteLogsByDate(uid, date); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type logDrinkInput struct {
	DrinkTypeID uint    `json:"drink_type_id" binding:"required"`
	AmountML    float64 `json:"amount_ml"` // 0 → drink's default serving
	Timestamp   string  `json:"timestamp"`
}

// LogDrink records a typed consumption entry.
func (d *DrinkTypeController) LogDrink(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input logDrinkInput
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

	entry, err := d.Intake.LogDrink(uid, input.DrinkTypeID, input.AmountML, at)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
