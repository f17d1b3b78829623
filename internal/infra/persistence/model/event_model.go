package model

import "time"

// EventModel mirrors the 'events' table. MerchantID references merchants.id.
type EventModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	MerchantID *int64     `gorm:"index"`
	Title      string     `gorm:"type:varchar(160);not null;index"`
	StartsAt   *time.Time `gorm:"index"`
	EndsAt     *time.Time `gorm:"index"`
	CreatedAt  time.Time

	Merchant *MerchantModel `gorm:"foreignKey:MerchantID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
