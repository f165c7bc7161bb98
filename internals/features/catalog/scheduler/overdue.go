// Package scheduler runs periodic catalog jobs.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	instanceModel "locallibrary_backend/internals/features/catalog/book_instances/model"
	"locallibrary_backend/internals/helpers/dbtime"
)

// CountOverdue counts copies on loan whose due date is before today.
func CountOverdue(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&instanceModel.BookInstanceModel{}).
		Where("book_instance_status = ?", instanceModel.StatusOnLoan).
		Where("book_instance_due_back < ?", dbtime.FormatDate(dbtime.Today())).
		Count(&n).Error
	return n, err
}

// RegisterOverdueSweep logs the overdue count on schedule. Nothing is written back;
// overdue is always derived.
func RegisterOverdueSweep(c *cron.Cron, db *gorm.DB, schedule string) (cron.EntryID, error) {
	return c.AddFunc(schedule, func() {
		n, err := CountOverdue(db)
		if err != nil {
			log.Printf("[ERROR] overdue sweep: %v", err)
			return
		}
		log.Printf("[INFO] overdue sweep: %d copies overdue on %s", n, dbtime.FormatDate(dbtime.Today()))
	})
}
