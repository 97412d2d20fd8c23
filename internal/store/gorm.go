package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"healthdesk/internal/models"
)

// GormStore keeps the document in the patients table. Row order follows the
// position column.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context) (*Document, error) {
	var rows []models.PatientRow
	if err := s.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}

	doc := NewDocument()
	for _, row := range rows {
		doc.Put(row.ID, models.PatientRecord{
			Name:    row.Name,
			City:    row.City,
			Age:     row.Age,
			Gender:  row.Gender,
			Height:  row.Height,
			Weight:  row.Weight,
			BMI:     row.BMI,
			Verdict: row.Verdict,
		})
	}
	return doc, nil
}

// Save replaces every row in one transaction.
func (s *GormStore) Save(ctx context.Context, doc *Document) error {
	rows := make([]models.PatientRow, 0, doc.Len())
	for i, id := range doc.IDs() {
		rec, _ := doc.Get(id)
		rows = append(rows, models.PatientRow{
			ID:       id,
			Position: i,
			Name:     rec.Name,
			City:     rec.City,
			Age:      rec.Age,
			Gender:   rec.Gender,
			Height:   rec.Height,
			Weight:   rec.Weight,
			BMI:      rec.BMI,
			Verdict:  rec.Verdict,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.PatientRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return fmt.Errorf("save patients: %w", err)
	}
	return nil
}
