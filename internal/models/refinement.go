package models

import (
	"time"

	"github.com/google/uuid"
)

type JobDescriptionSource string

const (
	SourceText JobDescriptionSource = "text"
	SourceURL  JobDescriptionSource = "url"
)

// RefinementRecord is the audit entry written after a successful refinement.
type RefinementRecord struct {
	ID                   uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename             string               `gorm:"type:text" json:"filename"`
	FileType             string               `gorm:"type:text;not null" json:"file_type"`
	MatchPercentage      float64              `gorm:"type:double precision" json:"match_percentage"`
	RequirementCount     int                  `gorm:"not null;default:0" json:"requirement_count"`
	MatchedCount         int                  `gorm:"not null;default:0" json:"matched_count"`
	ChangeCount          int                  `gorm:"not null;default:0" json:"change_count"`
	CoverLetterGenerated bool                 `gorm:"not null;default:false" json:"cover_letter_generated"`
	JobDescriptionSource JobDescriptionSource `gorm:"type:text;not null;default:'text'" json:"job_description_source"`
	CreatedAt            time.Time            `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (RefinementRecord) TableName() string {
	return "refinements"
}
