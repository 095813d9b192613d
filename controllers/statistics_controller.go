package controllers

import (
	"net/http"

	"github.com/Mourad-Gh-code/HydrationTime/services"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Svc *services.StatisticsService
}

func NewStatisticsController(svc *services.StatisticsService) *StatisticsController {
	return &StatisticsController{Svc: svc}
}

// rangeFromQuery resolves either ?period= (daily|weekly|monthly|yearly) or an
// explicit ?from=&?to= pair.
func rangeFromQuery(c *gin.Context) (from, to string, ok bool) {
	if period := c.Query("period"); period != "" {
		f, t, err := services.PeriodRange(period)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return "", "", false
		}
		return f, t, true
	}

	from = c.DefaultQuery("from", utils.DateDaysAgo(6))
	to = c.DefaultQuery("to", utils.TodayDate())
	for _, d := range []string{from, to} {
		if _, err := utils.ParseDate(d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return "", "", false
		}
	}
	if to < from {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return "", "", false
	}
	return from, to, true
}

func (s *StatisticsController) Summary(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	out, err := s.Svc.Summary(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *StatisticsController) Hourly(c *gin.Context) {
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

	out, err := s.Svc.Hourly(uid, date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *StatisticsController) Daily(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	out, err := s.Svc.DailyByDrink(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *StatisticsController) Distribution(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, to, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	out, err := s.Svc.Distribution(uid, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
