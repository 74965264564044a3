package models

import "time"

// QueryLog records one recommendation request after the fact. Entries are
// published to a Redis stream by the service and drained into Mongo by the
// worker pool, so logging never sits on the request path.
type QueryLog struct {
	ID              string    `bson:"log_id" json:"log_id"`
	RequestID       string    `bson:"request_id" json:"request_id"`
	Skills          string    `bson:"skills" json:"skills"`
	Interests       string    `bson:"interests" json:"interests"`
	ExperienceYears int       `bson:"experience_years" json:"experience_years"`
	EducationLevel  string    `bson:"education_level" json:"education_level"`
	TopCareerIDs    []int     `bson:"top_career_ids" json:"top_career_ids"`
	TopScores       []float64 `bson:"top_scores" json:"top_scores"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
