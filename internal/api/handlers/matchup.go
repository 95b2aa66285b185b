package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/matchup"
	"github.com/stitts-dev/cricket-sim/internal/models"
	"github.com/stitts-dev/cricket-sim/internal/services"
	"github.com/stitts-dev/cricket-sim/pkg/utils"
)

type MatchupHandler struct {
	analyzer *matchup.Analyzer
	cache    services.Cache
	ttl      time.Duration
	logger   *logrus.Logger
}

// NewMatchupHandler builds the handler. cache may be nil.
func NewMatchupHandler(analyzer *matchup.Analyzer, cache services.Cache, ttl time.Duration, logger *logrus.Logger) *MatchupHandler {
	return &MatchupHandler{
		analyzer: analyzer,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// GetMatchup returns head-to-head figures for a batter against a bowler
// GET /api/v1/matchups?batter=p1&bowler=p3
func (h *MatchupHandler) GetMatchup(c *gin.Context) {
	batterID := c.Query("batter")
	bowlerID := c.Query("bowler")

	key := services.MatchupCacheKey(batterID, bowlerID)
	if h.cache != nil && batterID != "" && bowlerID != "" {
		var cached models.MatchupResult
		err := h.cache.Get(c.Request.Context(), key, &cached)
		if err == nil {
			utils.SendSuccessWithMeta(c, cached, &utils.Meta{Cached: true})
			return
		}
		if !errors.Is(err, services.ErrCacheMiss) {
			h.logger.WithError(err).Warn("Matchup cache read failed")
		}
	}

	result, err := h.analyzer.Analyze(batterID, bowlerID)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), key, result, h.ttl); err != nil {
			h.logger.WithError(err).Warn("Matchup cache write failed")
		}
	}

	utils.SendSuccess(c, result)
}

// GetCandidates lists who may be picked as batter and as bowler
// GET /api/v1/matchups/candidates
func (h *MatchupHandler) GetCandidates(c *gin.Context) {
	batters, bowlers := h.analyzer.Candidates()
	utils.SendSuccess(c, gin.H{
		"batters": batters,
		"bowlers": bowlers,
	})
}
