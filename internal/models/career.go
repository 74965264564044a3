package models

import (
	"github.com/lib/pq"
)

// Career is one entry of the fixed career catalog. Rows are loaded once at
// startup (or refit) and treated as read-only afterwards; per-query match
// scores are returned alongside, never written back onto the record.
type Career struct {
	ID          int    `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title;type:text" json:"title"`
	Category    string `gorm:"column:category;type:text" json:"category"`
	Description string `gorm:"column:description;type:text" json:"description"`

	RequiredSkills    pq.StringArray `gorm:"column:required_skills;type:text[]" json:"required_skills"`
	RecommendedSkills pq.StringArray `gorm:"column:recommended_skills;type:text[]" json:"recommended_skills"`

	AverageSalary    string `gorm:"column:average_salary;type:text" json:"average_salary"`
	GrowthRate       string `gorm:"column:growth_rate;type:text" json:"growth_rate"`
	ExperienceNeeded string `gorm:"column:experience_needed;type:text" json:"experience_needed"`
	Education        string `gorm:"column:education;type:text" json:"education"`

	Companies    pq.StringArray `gorm:"column:companies;type:text[]" json:"companies"`
	LearningPath pq.StringArray `gorm:"column:learning_path;type:text[]" json:"learning_path"`
	JobMarket    string         `gorm:"column:job_market;type:text" json:"job_market"`
}

func (Career) TableName() string { return "careers" }

// CareerSummary is the trimmed shape returned by the catalog listing.
type CareerSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
