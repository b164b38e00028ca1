package handler

import (
	"pcd-jobs/internal/delivery/http/dto"
	"pcd-jobs/internal/pkg/response"
	uccompany "pcd-jobs/internal/usecase/company"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc *uccompany.Service
}

func NewCompanyHandler(uc *uccompany.Service) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) PublicProfile(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.PublicProfile(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewCompanySummaryResponse(p))
}

func (h *CompanyHandler) Search(c fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("search"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewCompanySummaryList(out))
}
