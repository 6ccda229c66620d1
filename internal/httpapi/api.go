package httpapi

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/providers"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/service"
)

const userContextKey = "current_user"

type API struct {
	auth         *service.AuthService
	translations *service.TranslationService
	history      *service.HistoryService
	saved        *service.SavedService
	feedback     *service.FeedbackService
	logger       *slog.Logger
}

func NewRouter(
	auth *service.AuthService,
	translations *service.TranslationService,
	history *service.HistoryService,
	saved *service.SavedService,
	feedback *service.FeedbackService,
	logger *slog.Logger,
) http.Handler {
	api := &API{
		auth:         auth,
		translations: translations,
		history:      history,
		saved:        saved,
		feedback:     feedback,
		logger:       logger,
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost", "http://localhost:5500", "http://127.0.0.1:5500"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to LinguaFlow API. Use /translate to translate text."})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", api.register)
	r.POST("/login", api.login)
	r.POST("/translate", api.authOptional(), api.translate)

	authed := r.Group("", api.authRequired())
	{
		authed.GET("/history", api.getHistory)
		authed.DELETE("/history/:id", api.deleteHistoryItem)
		authed.DELETE("/history", api.clearHistory)

		authed.POST("/saved-translations", api.saveTranslation)
		authed.POST("/saved-translations/unsave", api.unsaveTranslation)
		authed.GET("/saved-translations", api.listSavedTranslations)
		authed.DELETE("/saved-translations/:id", api.deleteSavedTranslation)
		authed.DELETE("/saved-translations", api.clearSavedTranslations)

		authed.POST("/contribute", api.contribute)
		authed.GET("/contributions", api.listContributions)
		authed.POST("/rate", api.rate)
		authed.POST("/rate/undo", api.undoRating)
	}

	return r
}

// authRequired resolves the bearer token to a user or rejects the request
// with a WWW-Authenticate challenge.
func (api *API) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			api.challenge(c, "not_authenticated")
			return
		}
		user, err := api.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				api.challenge(c, "token_expired")
			case errors.Is(err, service.ErrTokenInvalid):
				api.challenge(c, "token_invalid")
			default:
				api.handleError(c, err)
				c.Abort()
			}
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// authOptional resolves the caller's identity when a valid token is present
// and lets the request through anonymously otherwise.
func (api *API) authOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := api.auth.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

func (api *API) challenge(c *gin.Context, reason string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

func currentUser(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

func (api *API) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "username_taken"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
	case errors.Is(err, repository.ErrDuplicateContribution):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate_contribution"})
	case errors.Is(err, providers.ErrUnsupportedPair):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_language_pair"})
	case errors.Is(err, providers.ErrModelUnavailable):
		api.logger.Error("translation model unavailable", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "translation_unavailable"})
	case errors.Is(err, service.ErrEnrichment):
		api.logger.Error("history enrichment failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	default:
		api.logger.Error("request failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}

func (api *API) validationError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": msg})
}
