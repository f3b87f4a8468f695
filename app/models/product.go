package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. Rows are written by the seeder only.
type Product struct {
	ID          uint            `gorm:"primaryKey"              json:"id"`
	Name        string          `gorm:"size:255;not null"       json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"price"`
	Category    string          `gorm:"size:50;not null"        json:"category"`
	Description *string         `gorm:"size:2000"               json:"description"`
	ImageURL    *string         `gorm:"size:500"                json:"image_url"`
	ImageURL2   *string         `gorm:"size:500"                json:"image_url2"`
	ImageURL3   *string         `gorm:"size:500"                json:"image_url3"`
	Stock       int             `gorm:"not null;default:10"     json:"stock"`
}
