// Package gorm provides GORM model definitions for the application
package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsAdmin      bool      `gorm:"default:false"`
	IsApproved   bool      `gorm:"default:false"`
	Language     string    `gorm:"type:varchar(10);default:'en'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	PantryItems []PantryItemModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// DrinkModel represents the GORM model for drinks
type DrinkModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	Instructions string    `gorm:"type:text;not null"`
	Quote        string    `gorm:"type:text"`
	IsClassic    bool      `gorm:"default:false;index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Ingredients []DrinkIngredientModel `gorm:"foreignKey:DrinkID;constraint:OnDelete:CASCADE"`
}

// IngredientModel is the master ingredient list. Key is the normalized form
// of the name and is what every lookup joins on.
type IngredientModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Key       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// DrinkIngredientModel links a drink to an ingredient with its display text.
// Position preserves the author's ordering.
type DrinkIngredientModel struct {
	DrinkID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	IngredientID uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Amount       string    `gorm:"type:varchar(100)"`
	Position     int       `gorm:"not null;default:0"`

	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

// PantryItemModel represents one normalized key in a user's pantry
type PantryItemModel struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	CreatedAt time.Time
}

// PasswordResetRequestModel stores reset requests for admin review
type PasswordResetRequestModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `gorm:"index"`
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for DrinkModel
func (d *DrinkModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for PasswordResetRequestModel
func (p *PasswordResetRequestModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (UserModel) TableName() string {
	return "users"
}

func (DrinkModel) TableName() string {
	return "drinks"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (DrinkIngredientModel) TableName() string {
	return "drink_ingredients"
}

func (PantryItemModel) TableName() string {
	return "pantry_items"
}

func (PasswordResetRequestModel) TableName() string {
	return "password_reset_requests"
}
