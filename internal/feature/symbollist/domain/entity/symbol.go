// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol represents a selectable ETF in the dashboard catalogue.
// It contains the ticker, display name, asset category, listing exchange and
// display ordering.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Category  string    `gorm:"size:100;not null;default:''"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
