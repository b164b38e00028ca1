package handler

import (
	"pcd-jobs/internal/delivery/http/dto"
	"pcd-jobs/internal/pkg/response"
	ucjob "pcd-jobs/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc *ucjob.Service
}

func NewJobHandler(uc *ucjob.Service) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Create(c.Context(), p, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Job created", dto.NewJobResponse(j))
}

func (h *JobHandler) ListByCompany(c fiber.Ctx) error {
	companyID, err := paramID(c, "companyId")
	if err != nil {
		return err
	}

	out, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewJobList(out))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "jobId")
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "jobId")
	if err != nil {
		return err
	}
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	j, err := h.uc.Update(c.Context(), p, id, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Job updated", dto.NewJobResponse(j))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), p, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Job deleted", nil)
}
