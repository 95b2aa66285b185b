package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/cricket-sim/internal/models"
	"github.com/stitts-dev/cricket-sim/internal/refdata"
	"github.com/stitts-dev/cricket-sim/pkg/utils"
)

type ReferenceHandler struct {
	store *refdata.Store
}

func NewReferenceHandler(store *refdata.Store) *ReferenceHandler {
	return &ReferenceHandler{store: store}
}

// GetTeams returns teams, optionally filtered by category
// GET /api/v1/teams?category=franchise
func (h *ReferenceHandler) GetTeams(c *gin.Context) {
	category := models.TeamCategory(c.Query("category"))
	if category != "" && category != models.CategoryInternational && category != models.CategoryFranchise {
		utils.SendValidationError(c, "Invalid category", "Category must be one of: international, franchise")
		return
	}

	teams := h.store.Teams(category)
	utils.SendSuccessWithMeta(c, teams, &utils.Meta{Total: len(teams), Filter: string(category)})
}

// GET /api/v1/venues
func (h *ReferenceHandler) GetVenues(c *gin.Context) {
	venues := h.store.Venues()
	utils.SendSuccessWithMeta(c, venues, &utils.Meta{Total: len(venues)})
}

// GetPlayers returns players, optionally filtered by role
// GET /api/v1/players?role=bowler
func (h *ReferenceHandler) GetPlayers(c *gin.Context) {
	role := models.PlayerRole(c.Query("role"))
	if role != "" && !role.Valid() {
		utils.SendValidationError(c, "Invalid role", "Role must be one of: batsman, bowler, all-rounder, wicketkeeper")
		return
	}

	players := h.store.Players(role)
	utils.SendSuccessWithMeta(c, players, &utils.Meta{Total: len(players), Filter: string(role)})
}
