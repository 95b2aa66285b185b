package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/models"
	"github.com/stitts-dev/cricket-sim/internal/projection"
	"github.com/stitts-dev/cricket-sim/internal/services"
	"github.com/stitts-dev/cricket-sim/pkg/utils"
)

type ProjectionHandler struct {
	model  *projection.Model
	cache  services.Cache
	ttl    time.Duration
	logger *logrus.Logger
}

// NewProjectionHandler builds the handler. cache may be nil.
func NewProjectionHandler(model *projection.Model, cache services.Cache, ttl time.Duration, logger *logrus.Logger) *ProjectionHandler {
	return &ProjectionHandler{
		model:  model,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// CreateProjection projects the final first-innings score for a scenario
// POST /api/v1/projections
func (h *ProjectionHandler) CreateProjection(c *gin.Context) {
	var scenario models.MatchScenario
	if err := c.ShouldBindJSON(&scenario); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	key := services.ProjectionCacheKey(scenario)
	if h.cache != nil {
		var cached models.ProjectionResult
		err := h.cache.Get(c.Request.Context(), key, &cached)
		if err == nil {
			utils.SendSuccessWithMeta(c, cached, &utils.Meta{Cached: true})
			return
		}
		if !errors.Is(err, services.ErrCacheMiss) {
			h.logger.WithError(err).Warn("Projection cache read failed")
		}
	}

	result, err := h.model.Project(scenario)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), key, result, h.ttl); err != nil {
			h.logger.WithError(err).Warn("Projection cache write failed")
		}
	}

	h.logger.WithFields(logrus.Fields{
		"batting_team": scenario.BattingTeamID,
		"bowling_team": scenario.BowlingTeamID,
		"venue":        scenario.VenueID,
		"predicted":    result.PredictedScore,
	}).Debug("Projection computed")

	utils.SendSuccess(c, result)
}
