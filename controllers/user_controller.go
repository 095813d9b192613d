package controllers

import (
	"net/http"

	"github.com/Mourad-Gh-code/HydrationTime/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

func (u *UserController) GetProfile(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := u.Svc.GetProfile(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := u.Svc.UpdateProfile(uid, input); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// DeleteAccount removes the user and all owned data.
func (u *UserController) DeleteAccount(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := u.Svc.DeleteAccount(uid); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
