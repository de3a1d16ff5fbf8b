package handler

import (
	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

// absenceRequest is the body of leave and license writes. The struct-level
// dateOrder rule checks that EndDate is after StartDate.
type absenceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required" label:"Employee ID"`
	StartDate  string `json:"startDate" validate:"required,isodate" label:"Start Date"`
	EndDate    string `json:"endDate" validate:"required,isodate" label:"End Date"`
	Reason     string `json:"reason" validate:"required" label:"Reason"`
}

func (r *absenceRequest) input() ports.AbsenceInput {
	start, _ := parseDate(r.StartDate)
	end, _ := parseDate(r.EndDate)
	return ports.AbsenceInput{
		EmployeeID: r.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     r.Reason,
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED" label:"Status"`
}

func (r *statusRequest) input() domain.Status {
	return domain.Status(r.Status)
}

type payrollRequest struct {
	EmployeeID string `json:"employeeId" validate:"required" label:"Employee ID"`
	Amount     string `json:"amount" validate:"required,money" label:"Amount"`
	Date       string `json:"date" validate:"required,isodate" label:"Date"`
}

func (r *payrollRequest) input() ports.PayrollInput {
	date, _ := parseDate(r.Date)
	return ports.PayrollInput{EmployeeID: r.EmployeeID, Amount: r.Amount, Date: date}
}

type performanceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required" label:"Employee ID"`
	ReviewerID string `json:"reviewerId" validate:"required" label:"Reviewer ID"`
	Score      string `json:"score" validate:"required,oneof=CERO UNO DOS TRES CUATRO CINCO" label:"Score"`
	Comments   string `json:"comments" validate:"required" label:"Comments"`
	Date       string `json:"date" validate:"required,isodate" label:"Date"`
}

func (r *performanceRequest) input() ports.PerformanceInput {
	date, _ := parseDate(r.Date)
	return ports.PerformanceInput{
		EmployeeID: r.EmployeeID,
		ReviewerID: r.ReviewerID,
		Score:      domain.Score(r.Score),
		Comments:   r.Comments,
		Date:       date,
	}
}
