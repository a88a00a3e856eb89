package domain

import "github.com/shopspring/decimal"

// Product ids are human-assigned (e.g. "F001") and stable; they show up on
// printed invoices, so they are never regenerated.
type Product struct {
	ID         string          `json:"id" gorm:"primaryKey;size:32"`
	Name       string          `json:"name" gorm:"size:128;not null"`
	TypeID     uint64          `json:"typeId" gorm:"not null;index"`
	Type       *FurnitureType  `json:"-" gorm:"foreignKey:TypeID"`
	MaterialID uint64          `json:"materialId" gorm:"not null;index"`
	Material   *Material       `json:"-" gorm:"foreignKey:MaterialID"`
	Stock      int             `json:"stock" gorm:"not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL   string          `json:"imageUrl" gorm:"size:255"`
}

type FurnitureType struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:64;not null"`
}

type Material struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:64;not null"`
}

// ProductDetail is the catalog read shape: a product row joined with its
// type and material names.
type ProductDetail struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TypeID       uint64          `json:"typeId"`
	TypeName     string          `json:"typeName"`
	MaterialID   uint64          `json:"materialId"`
	MaterialName string          `json:"materialName"`
	Stock        int             `json:"stock"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageUrl"`
}
