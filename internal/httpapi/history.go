package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
)

func (api *API) getHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	records, err := api.history.GetHistory(c.Request.Context(), user.ID, c.Query("search"))
	if err != nil {
		api.handleError(c, err)
		return
	}
	if records == nil {
		// empty history renders as [] not null
		records = []domain.EnrichedHistoryRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (api *API) deleteHistoryItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	if err := api.history.DeleteItem(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (api *API) clearHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		api.challenge(c, "not_authenticated")
		return
	}

	if err := api.history.ClearAll(c.Request.Context(), user.ID); err != nil {
		api.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all history and saved translations cleared"})
}
