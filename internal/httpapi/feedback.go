package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

func (api *API) contribute(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	var payload struct {
		OriginalText         string `json:"original_text" binding:"required"`
		SuggestedTranslation string `json:"suggested_translation" binding:"required"`
		SourceLang           string `json:"source_lang" binding:"required"`
		TargetLang           string `json:"target_lang" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "original_text, suggested_translation, source_lang and target_lang are required")
		return
	}

	_, err := api.feedback.Contribute(c.Request.Context(), domain.Contribution{
		UserID:               user.ID,
		OriginalText:         payload.OriginalText,
		SuggestedTranslation: payload.SuggestedTranslation,
		SourceLang:           payload.SourceLang,
		TargetLang:           payload.TargetLang,
	})
	if err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contribution received, thank you"})
}

func (api *API) listContributions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	contribs, err := api.feedback.ListContributions(c.Request.Context(), user.ID)
	if err != nil {
		api.handleError(c, err)
		return
	}
	if contribs == nil {
		contribs = []domain.Contribution{}
	}
	c.JSON(http.StatusOK, contribs)
}

func (api *API) rate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	var payload struct {
		OriginalText   string `json:"original_text" binding:"required"`
		TranslatedText string `json:"translated_text" binding:"required"`
		Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "original_text, translated_text and a rating between 1 and 5 are required")
		return
	}

	rating, err := api.feedback.Rate(c.Request.Context(), user.ID, payload.OriginalText, payload.TranslatedText, payload.Rating)
	if err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating received", "rating": rating.Rating})
}

func (api *API) undoRating(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	var payload struct {
		OriginalText   string `json:"original_text" binding:"required"`
		TranslatedText string `json:"translated_text" binding:"required"`
		Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.validationError(c, "original_text, translated_text and a rating between 1 and 5 are required")
		return
	}

	removed, err := api.feedback.UndoRating(c.Request.Context(), user.ID, payload.OriginalText, payload.TranslatedText, payload.Rating)
	if err != nil {
		api.handleError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to undo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating removed"})
}
