package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionDocument is the row holding one serialized collection.
type CollectionDocument struct {
	Name      string    `gorm:"primaryKey;size:64"`
	Data      string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CollectionDocument) TableName() string {
	return "collections"
}

type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&CollectionDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate collections table: %w", err)
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) Load(ctx context.Context, collection string) ([]byte, error) {
	var doc CollectionDocument
	if err := b.db.WithContext(ctx).First(&doc, "name = ?", collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(doc.Data), nil
}

func (b *GormBackend) Save(ctx context.Context, collection string, data []byte) error {
	doc := CollectionDocument{Name: collection, Data: string(data), UpdatedAt: time.Now()}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
}

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
