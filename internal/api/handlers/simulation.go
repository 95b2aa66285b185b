package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/simulator"
	"github.com/stitts-dev/cricket-sim/pkg/utils"
)

type SimulationHandler struct {
	driver *simulator.Driver
	logger *logrus.Logger
}

func NewSimulationHandler(driver *simulator.Driver, logger *logrus.Logger) *SimulationHandler {
	return &SimulationHandler{
		driver: driver,
		logger: logger,
	}
}

// GET /api/v1/simulation
func (h *SimulationHandler) GetState(c *gin.Context) {
	utils.SendSuccess(c, h.driver.Snapshot())
}

// POST /api/v1/simulation/start
func (h *SimulationHandler) Start(c *gin.Context) {
	if err := h.driver.Start(); err != nil {
		utils.SendDomainError(c, err)
		return
	}
	snapshot := h.driver.Snapshot()
	h.logger.WithField("match_id", snapshot.MatchID).Info("Live simulation started")
	utils.SendSuccess(c, snapshot)
}

// POST /api/v1/simulation/pause
func (h *SimulationHandler) Pause(c *gin.Context) {
	if err := h.driver.Pause(); err != nil {
		utils.SendDomainError(c, err)
		return
	}
	utils.SendSuccess(c, h.driver.Snapshot())
}

// POST /api/v1/simulation/reset
func (h *SimulationHandler) Reset(c *gin.Context) {
	h.driver.Reset()
	utils.SendSuccess(c, h.driver.Snapshot())
}
