package handler

import (
	"pcd-jobs/internal/delivery/http/dto"
	"pcd-jobs/internal/pkg/response"
	uctalent "pcd-jobs/internal/usecase/talent"

	"github.com/gofiber/fiber/v3"
)

type TalentHandler struct {
	uc *uctalent.Service
}

func NewTalentHandler(uc *uctalent.Service) *TalentHandler {
	return &TalentHandler{uc: uc}
}

func (h *TalentHandler) Apply(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	companyID, err := paramID(c, "companyId")
	if err != nil {
		return err
	}

	created, err := h.uc.Apply(c.Context(), p, companyID)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !created {
		return response.OK(c, "Application already registered", nil)
	}
	return response.Created(c, "Application registered", nil)
}

// Withdraw answers 201 whether or not an application existed.
func (h *TalentHandler) Withdraw(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	companyID, err := paramID(c, "companyId")
	if err != nil {
		return err
	}

	if err := h.uc.Withdraw(c.Context(), p, companyID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Application removed", nil)
}

func (h *TalentHandler) Applicants(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.uc.ListApplicants(c.Context(), p, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewApplicantList(out))
}

func (h *TalentHandler) CompaniesApplied(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.uc.ListCompaniesApplied(c.Context(), p, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewAppliedCompanyList(out))
}
