package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *API) translate(c *gin.Context) {
	var payload struct {
		Text       string `json:"text" binding:"required"`
		SourceLang string `json:"source_lang"`
		TargetLang string `json:"target_lang"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "text is required")
		return
	}
	if payload.SourceLang == "" {
		payload.SourceLang = "en"
	}
	if payload.TargetLang == "" {
		payload.TargetLang = "vi"
	}

	// Anonymous callers get a translation but nothing is persisted.
	var userID string
	if user, ok := currentUser(c); ok {
		userID = user.ID
	}

	result, err := api.translations.Translate(c.Request.Context(), userID, payload.Text, payload.SourceLang, payload.TargetLang)
	if err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
