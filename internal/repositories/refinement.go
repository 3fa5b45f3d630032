package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-refiner/internal/models"
)

var ErrRefinementNotFound = errors.New("refinement not found")

type RefinementRepository interface {
	Create(record *models.RefinementRecord) error
	FindByID(id uuid.UUID) (*models.RefinementRecord, error)
	FindRecent(limit int) ([]models.RefinementRecord, error)
}

type refinementRepository struct {
	db *gorm.DB
}

func NewRefinementRepository(db *gorm.DB) RefinementRepository {
	return &refinementRepository{db: db}
}

func (r *refinementRepository) Create(record *models.RefinementRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create refinement record: %w", err)
	}
	return nil
}

func (r *refinementRepository) FindByID(id uuid.UUID) (*models.RefinementRecord, error) {
	var record models.RefinementRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefinementNotFound
		}
		return nil, fmt.Errorf("failed to find refinement record: %w", err)
	}
	return &record, nil
}

func (r *refinementRepository) FindRecent(limit int) ([]models.RefinementRecord, error) {
	var records []models.RefinementRecord
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find recent refinements: %w", err)
	}

	return records, nil
}
