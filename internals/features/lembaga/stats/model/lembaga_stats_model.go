package model

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot counter per lembaga; di-refresh berkala dan saat diminta.
type LembagaStatsModel struct {
	LembagaStatsLembagaID uuid.UUID `gorm:"column:lembaga_stats_lembaga_id;type:uuid;primaryKey" json:"lembaga_stats_lembaga_id"`

	LembagaStatsActiveClasses     int64 `gorm:"column:lembaga_stats_active_classes;not null;default:0" json:"lembaga_stats_active_classes"`
	LembagaStatsActiveEnrollments int64 `gorm:"column:lembaga_stats_active_enrollments;not null;default:0" json:"lembaga_stats_active_enrollments"`
	LembagaStatsOpenCases         int64 `gorm:"column:lembaga_stats_open_cases;not null;default:0" json:"lembaga_stats_open_cases"`
	LembagaStatsPendingDonations  int64 `gorm:"column:lembaga_stats_pending_donations;not null;default:0" json:"lembaga_stats_pending_donations"`

	LembagaStatsRefreshedAt time.Time `gorm:"column:lembaga_stats_refreshed_at;autoUpdateTime" json:"lembaga_stats_refreshed_at"`
}

func (LembagaStatsModel) TableName() string {
	return "lembaga_stats"
}
