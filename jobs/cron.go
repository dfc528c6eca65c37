package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// DueSweeper định nghĩa interface cho việc quét khoản thu quá hạn
type DueSweeper interface {
	SweepOverdues(m *melody.Melody) error
}

var dueSweeper DueSweeper

// SetDueSweeper thiết lập implementation cho DueSweeper
func SetDueSweeper(sweeper DueSweeper) {
	dueSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job quét khoản thu quá hạn lúc 00:05 mỗi ngày
	_, err := c.AddFunc("5 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét khoản thu quá hạn lúc: %v", now)
		if dueSweeper == nil {
			log.Printf("Lỗi: DueSweeper chưa được thiết lập")
			return
		}
		if err := dueSweeper.SweepOverdues(m); err != nil {
			log.Printf("Lỗi khi quét khoản thu quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
