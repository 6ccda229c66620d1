package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *API) register(c *gin.Context) {
	var payload struct {
		Username        string `json:"username" binding:"required"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "username and a password of at least 6 characters are required")
		return
	}
	if payload.Password != payload.ConfirmPassword {
		api.validationError(c, "passwords do not match")
		return
	}

	_, token, err := api.auth.Register(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (api *API) login(c *gin.Context) {
	var payload struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "username and password are required")
		return
	}

	_, token, err := api.auth.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
