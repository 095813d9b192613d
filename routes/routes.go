package routes

import (
	"github.com/Mourad-Gh-code/HydrationTime/controllers"
	"github.com/Mourad-Gh-code/HydrationTime/middlewares"
	"github.com/Mourad-Gh-code/HydrationTime/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	hub := services.NewProgressHub()
	notifications := services.NewNotificationService(db, hub)
	streaks := services.NewStreakService(db)
	goals := services.NewGoalService(db, streaks)
	intake := services.NewIntakeService(db, goals, hub)
	drinkTypes := services.NewDrinkTypeService(db)
	stats := services.NewStatisticsService(db, streaks)
	prefs := services.NewPreferencesService(db)
	reminders := services.NewReminderService(prefs, services.NewLocalScheduler(notifications))

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	intakeCtl := controllers.NewIntakeController(intake)
	drinkCtl := controllers.NewDrinkTypeController(drinkTypes, intake)
	goalCtl := controllers.NewGoalController(goals)
	statsCtl := controllers.NewStatisticsController(stats)
	streakCtl := controllers.NewStreakController(streaks)
	prefsCtl := controllers.NewPreferencesController(prefs, reminders)
	reminderCtl := controllers.NewReminderController(reminders, notifications)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(db))
	{
		user := authed.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
			user.DELETE("/account", userCtl.DeleteAccount)
			user.GET("/preferences", prefsCtl.Get)
			user.PUT("/preferences", prefsCtl.Update)
			user.POST("/notifications/toggle", prefsCtl.ToggleNotifications)
		}

		in := authed.Group("/intake")
		{
			in.POST("", intakeCtl.AddIntake)
			in.GET("", intakeCtl.Today)
			in.GET("/all", intakeCtl.All)
			in.GET("/history", intakeCtl.History)
			in.DELETE("/:id", intakeCtl.DeleteIntake)
		}

		drinks := authed.Group("/drinks")
		{
			drinks.GET("", drinkCtl.List)
			drinks.POST("", drinkCtl.Create)
			drinks.PUT("/:id", drinkCtl.Update)
			drinks.DELETE("/:id", drinkCtl.Delete)
			drinks.POST("/log", drinkCtl.LogDrink)
			drinks.GET("/logs", drinkCtl.Logs)
			drinks.GET("/logs/dates", drinkCtl.LoggedDates)
			drinks.DELETE("/logs", drinkCtl.DeleteLogs)
		}

		gl := authed.Group("/goals")
		{
			gl.GET("", goalCtl.GetGoals)
			gl.PUT("", goalCtl.UpdateGoal)
			gl.GET("/history", goalCtl.History)
		}

		st := authed.Group("/statistics")
		{
			st.GET("/summary", statsCtl.Summary)
			st.GET("/hourly", statsCtl.Hourly)
			st.GET("/daily", statsCtl.Daily)
			st.GET("/distribution", statsCtl.Distribution)
		}

		sk := authed.Group("/streaks")
		{
			sk.GET("", streakCtl.Range)
			sk.GET("/achieved-count", streakCtl.AchievedCount)
			sk.GET("/current", streakCtl.Current)
		}

		rem := authed.Group("/reminders")
		{
			rem.POST("/schedule", reminderCtl.Schedule)
			rem.POST("/cancel", reminderCtl.Cancel)
			rem.GET("/messages", reminderCtl.Messages)
		}

		authed.GET("/ws", realtimeCtl.ProgressWS)
	}

	return r
}
