package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

func (api *API) saveTranslation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	var payload struct {
		OriginalText   string `json:"original_text" binding:"required"`
		TranslatedText string `json:"translated_text" binding:"required"`
		SourceLang     string `json:"source_lang" binding:"required"`
		TargetLang     string `json:"target_lang" binding:"required"`
		Note           string `json:"note"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "original_text, translated_text, source_lang and target_lang are required")
		return
	}

	item := domain.SavedTranslation{
		UserID:         user.ID,
		OriginalText:   payload.OriginalText,
		TranslatedText: payload.TranslatedText,
		SourceLang:     payload.SourceLang,
		TargetLang:     payload.TargetLang,
	}
	if strings.TrimSpace(payload.Note) != "" {
		note := payload.Note
		item.Note = &note
	}

	saved, err := api.saved.Save(c.Request.Context(), item)
	if err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (api *API) unsaveTranslation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	var payload struct {
		OriginalText   string `json:"original_text" binding:"required"`
		TranslatedText string `json:"translated_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "original_text and translated_text are required")
		return
	}

	removed, err := api.saved.Unsave(c.Request.Context(), user.ID, payload.OriginalText, payload.TranslatedText)
	if err != nil {
		api.handleError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusOK, gin.H{"message": "item was not saved"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unsaved successfully"})
}

func (api *API) listSavedTranslations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	items, err := api.saved.List(c.Request.Context(), user.ID, c.Query("search"))
	if err != nil {
		api.handleError(c, err)
		return
	}
	if items == nil {
		items = []domain.SavedTranslation{}
	}
	c.JSON(http.StatusOK, items)
}

func (api *API) deleteSavedTranslation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	if err := api.saved.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (api *API) clearSavedTranslations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	if err := api.saved.ClearAll(c.Request.Context(), user.ID); err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all saved translations cleared"})
}
