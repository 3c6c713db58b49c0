package utils

import (
	"fmt"
	"log"
	"time"

	"reelcamp/database"
	"reelcamp/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// Cart items older than this are considered abandoned.
const cartRetentionDays = 30

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CART-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartCartScheduler runs the cart reaper once a day. The returned
// cron is stopped on shutdown.
func StartCartScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@daily", PruneCartItems); err != nil {
		log.Fatalf("Failed to schedule cart reaper: %v", err)
	}
	c.Start()
	logScheduler("Cart scheduler started")
	return c
}

// PruneCartItems removes cart items that can no longer be paid for:
// the referenced class was deleted or left the active set, or the item
// has sat in the cart past the retention window. Cart rows carry no
// foreign key to classes, so orphans accumulate until this runs.
func PruneCartItems() {
	db := database.Database.Db

	var liveIDs []uint
	if err := db.Model(&models.Class{}).
		Where("instructor_status = ?", models.ClassActive).
		Pluck("id", &liveIDs).Error; err != nil {
		logScheduler("Error fetching active class ids: " + err.Error())
		return
	}

	orphans := db.Where("1 = 1")
	if len(liveIDs) > 0 {
		orphans = db.Where("class_id NOT IN ?", liveIDs)
	}
	result := orphans.Delete(&models.SelectedClass{})
	if result.Error != nil {
		logScheduler("Error pruning orphaned cart items: " + result.Error.Error())
	} else if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Pruned %d orphaned cart items", result.RowsAffected))
	}

	cutoff := now.BeginningOfDay().AddDate(0, 0, -cartRetentionDays)
	result = db.Where("created_at < ?", cutoff).Delete(&models.SelectedClass{})
	if result.Error != nil {
		logScheduler("Error pruning stale cart items: " + result.Error.Error())
	} else if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Pruned %d stale cart items", result.RowsAffected))
	}
}
