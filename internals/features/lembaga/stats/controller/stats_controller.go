package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsService "lembagaku_backend/internals/features/lembaga/stats/service"
	helper "lembagaku_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

/* ===================== DASHBOARD STATS ===================== */
// GET /api/a/stats
//
// Snapshot dihitung ulang saat diminta supaya dashboard selalu segar;
// refresher berkala menjaga lembaga yang jarang dibuka tetap terisi.
func (ctrl *StatsController) Get(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	stats, err := statsService.RefreshLembagaStats(ctrl.DB, lembagaID)
	if err != nil {
		log.Printf("[ERROR] gagal refresh stats lembaga %s: %v", lembagaID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung statistik lembaga")
	}

	return helper.JsonOK(c, "OK", stats)
}
