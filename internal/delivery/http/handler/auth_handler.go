package handler

import (
	"pcd-jobs/internal/delivery/http/dto"
	"pcd-jobs/internal/pkg/response"
	ucauth "pcd-jobs/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc *ucauth.Service
}

func NewAuthHandler(uc *ucauth.Service) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterCompany(c fiber.Ctx) error {
	var req dto.RegisterCompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	id, err := h.uc.RegisterCompany(c.Context(), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Company registered", dto.RegisterResponse{ID: id.String()})
}

func (h *AuthHandler) RegisterPCD(c fiber.Ctx) error {
	var req dto.RegisterPCDRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	id, err := h.uc.RegisterPCD(c.Context(), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "User registered", dto.RegisterResponse{ID: id.String()})
}

// RegisterPCDBatch registers each item independently and reports per-item
// results. It succeeds even when every item fails.
func (h *AuthHandler) RegisterPCDBatch(c fiber.Ctx) error {
	var req []dto.RegisterPCDRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	items := make([]ucauth.RegisterPCDInput, 0, len(req))
	for _, r := range req {
		items = append(items, r.Input())
	}

	results := h.uc.RegisterPCDBatch(c.Context(), items)
	return response.OK(c, response.MessageOK, dto.NewBatchResultList(results, errorMessage))
}

func (h *AuthHandler) LoginCompany(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.LoginCompany(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewLoginResponse(res))
}

func (h *AuthHandler) LoginPCD(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.LoginPCD(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewLoginResponse(res))
}
