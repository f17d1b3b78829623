package model

import "time"

// MerchantModel mirrors the 'merchants' table.
type MerchantModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(120);not null;index"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
