package model

import "time"

// SaveSlot is one named save file. The whole game state travels as a JSON
// payload; slots are few and small, so a blob column beats a table per
// collection.
type SaveSlot struct {
	Slot    string    `gorm:"column:slot;primaryKey"`
	Payload []byte    `gorm:"column:payload"`
	SavedAt time.Time `gorm:"column:saved_at"`
}

func (SaveSlot) TableName() string {
	return "save_slots"
}
