package domain

import "time"

var (
	ErrPerformanceNotFound = NotFound("Performance not found")
	ErrPerformancesEmpty   = NotFound("Performances not found")
)

// Score is the six-point verbal review scale.
type Score string

const (
	ScoreZero  Score = "CERO"
	ScoreOne   Score = "UNO"
	ScoreTwo   Score = "DOS"
	ScoreThree Score = "TRES"
	ScoreFour  Score = "CUATRO"
	ScoreFive  Score = "CINCO"
)

// Performance is a review of an employee written by a reviewer.
type Performance struct {
	Record     `bson:",inline"`
	EmployeeID string    `json:"employeeId" bson:"employee_id" db:"employee_id"`
	ReviewerID string    `json:"reviewerId" bson:"reviewer_id" db:"reviewer_id"`
	Score      Score     `json:"score" bson:"score" db:"score"`
	Comments   string    `json:"comments" bson:"comments" db:"comments"`
	Date       time.Time `json:"date" bson:"date" db:"date"`
}
