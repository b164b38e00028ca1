package dto

import (
	"time"

	"pcd-jobs/internal/domain/job"
	ucjob "pcd-jobs/internal/usecase/job"
)

type JobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
}

func (r JobRequest) Input() ucjob.Input {
	return ucjob.Input{Title: r.Title, Description: r.Description, Location: r.Location, Salary: r.Salary}
}

type JobResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID.String(),
		CompanyID:   j.CompanyID.String(),
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Salary:      j.Salary,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func NewJobList(in []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(in))
	for _, j := range in {
		out = append(out, NewJobResponse(j))
	}
	return out
}
