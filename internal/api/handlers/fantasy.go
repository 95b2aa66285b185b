package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/cricket-sim/internal/fantasy"
	"github.com/stitts-dev/cricket-sim/pkg/utils"
)

type FantasyHandler struct {
	scorer *fantasy.Scorer
}

func NewFantasyHandler(scorer *fantasy.Scorer) *FantasyHandler {
	return &FantasyHandler{scorer: scorer}
}

type ScoreTeamRequest struct {
	PlayerIDs []string `json:"player_ids"`
}

// ScoreTeam estimates the points an eleven will collect
// POST /api/v1/fantasy/score
func (h *FantasyHandler) ScoreTeam(c *gin.Context) {
	var req ScoreTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.scorer.ScoreIDs(req.PlayerIDs)
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	utils.SendSuccess(c, result)
}
