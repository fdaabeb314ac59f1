package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lembagaku_backend/internals/features/lembaga/stats/model"
)

// RefreshLembagaStats menghitung ulang counter satu lembaga dan
// meng-upsert snapshot-nya.
func RefreshLembagaStats(db *gorm.DB, lembagaID uuid.UUID) (*model.LembagaStatsModel, error) {
	stats := model.LembagaStatsModel{LembagaStatsLembagaID: lembagaID}

	if err := db.Table("classes").
		Where("class_lembaga_id = ? AND class_is_active = TRUE AND class_deleted_at IS NULL", lembagaID).
		Count(&stats.LembagaStatsActiveClasses).Error; err != nil {
		return nil, err
	}

	if err := db.Table("enrollments").
		Where("enrollment_lembaga_id = ? AND enrollment_status = 'active' AND enrollment_deleted_at IS NULL", lembagaID).
		Count(&stats.LembagaStatsActiveEnrollments).Error; err != nil {
		return nil, err
	}

	if err := db.Table("layanan_cases").
		Where("case_lembaga_id = ? AND case_status IN ('submitted', 'scheduled') AND case_deleted_at IS NULL", lembagaID).
		Count(&stats.LembagaStatsOpenCases).Error; err != nil {
		return nil, err
	}

	if err := db.Table("donations").
		Where("donation_lembaga_id = ? AND donation_status = 'pending' AND deleted_at IS NULL", lembagaID).
		Count(&stats.LembagaStatsPendingDonations).Error; err != nil {
		return nil, err
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lembaga_stats_lembaga_id"}},
		UpdateAll: true,
	}).Create(&stats).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// RefreshAll me-refresh snapshot semua lembaga aktif satu per satu.
func RefreshAll(db *gorm.DB) {
	var ids []uuid.UUID
	if err := db.Table("lembagas").
		Where("lembaga_is_active = TRUE AND lembaga_deleted_at IS NULL").
		Pluck("lembaga_id", &ids).Error; err != nil {
		log.Printf("[ERROR] gagal mengambil daftar lembaga untuk refresh stats: %v", err)
		return
	}

	for _, id := range ids {
		if _, err := RefreshLembagaStats(db, id); err != nil {
			log.Printf("[ERROR] gagal refresh stats lembaga %s: %v", id, err)
		}
	}
}

// StartRefresher menjalankan refresh berkala di goroutine sendiri.
// Berhenti saat channel stop ditutup.
func StartRefresher(db *gorm.DB, interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Printf("🔄 Stats refresher aktif (interval %s)", interval)
		for {
			select {
			case <-ticker.C:
				RefreshAll(db)
			case <-stop:
				log.Println("🔄 Stats refresher berhenti")
				return
			}
		}
	}()
}
