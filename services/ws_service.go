package services

import (
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// OccupancyEvent là payload đẩy qua websocket khi trạng thái giường/phòng đổi
type OccupancyEvent struct {
	Type       string    `json:"type"`
	RoomID     uint      `json:"roomId"`
	BedID      uint      `json:"bedId,omitempty"`
	BedStatus  int       `json:"bedStatus,omitempty"`
	RoomStatus int       `json:"roomStatus"`
	At         time.Time `json:"at"`
}

// DueSweepEvent là payload đẩy khi quét khoản thu quá hạn xong
type DueSweepEvent struct {
	Type    string    `json:"type"`
	Swept   int       `json:"swept"`
	RanAt   time.Time `json:"ranAt"`
	Trigger string    `json:"trigger"`
}

// BroadcastOccupancy đẩy sự kiện occupancy cho các client đang theo dõi
func BroadcastOccupancy(m *melody.Melody, event OccupancyEvent) {
	if m == nil {
		return
	}

	event.At = time.Now()
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi khi marshal sự kiện occupancy: %v", err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast sự kiện occupancy: %v", err)
	}
}

// BroadcastDueSweep đẩy kết quả quét khoản thu quá hạn
func BroadcastDueSweep(m *melody.Melody, swept int, trigger string) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(DueSweepEvent{
		Type:    "due_sweep",
		Swept:   swept,
		RanAt:   time.Now(),
		Trigger: trigger,
	})
	if err != nil {
		log.Printf("Lỗi khi marshal sự kiện quét khoản thu: %v", err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast sự kiện quét khoản thu: %v", err)
	}
}
