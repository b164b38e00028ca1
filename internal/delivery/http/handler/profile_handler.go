package handler

import (
	"pcd-jobs/internal/delivery/http/dto"
	"pcd-jobs/internal/pkg/response"
	"pcd-jobs/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc *profile.Service
}

func NewProfileHandler(uc *profile.Service) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) CompanyDetails(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	co, err := h.uc.GetCompanyOwner(c.Context(), p)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewCompanyOwnerResponse(co))
}

func (h *ProfileHandler) WorkerDetails(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}

	u, err := h.uc.GetPCDOwner(c.Context(), p)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewPCDOwnerResponse(u))
}

// CompanyByID renders the owner projection only to the company itself.
func (h *ProfileHandler) CompanyByID(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	v, err := h.uc.GetCompanyProfile(c.Context(), p, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewCompanyView(v))
}

func (h *ProfileHandler) PCDByID(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	v, err := h.uc.GetPCDProfile(c.Context(), p, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewPCDView(v))
}

func (h *ProfileHandler) UpdateCompany(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateCompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.uc.UpdateCompany(c.Context(), p, req.Input()); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Profile updated", nil)
}

func (h *ProfileHandler) UpdatePCD(c fiber.Ctx) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePCDRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.uc.UpdatePCD(c.Context(), p, req.Input()); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Profile updated", nil)
}
