package db

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateBlob is one serialized aggregate stored under a fixed key. The
// application never reads individual entities out of SQLite; the whole
// state document is written and loaded as a single payload.
type StateBlob struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StateBlob) TableName() string {
	return "app_state"
}

type StateBlobRepository struct {
	database *gorm.DB
}

func NewStateBlobRepository(database *gorm.DB) *StateBlobRepository {
	return &StateBlobRepository{database: database}
}

func (repo *StateBlobRepository) Load(key string) ([]byte, bool, error) {
	var blob StateBlob
	result := repo.database.Where("key = ?", key).Limit(1).Find(&blob)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return blob.Payload, true, nil
}

func (repo *StateBlobRepository) Save(key string, payload []byte) error {
	blob := StateBlob{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&blob).Error
}
