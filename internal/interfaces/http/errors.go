package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/domain"
)

// respondError traduz os erros sentinela do domínio para status HTTP.
// Erros não mapeados viram 500 com mensagem genérica: detalhes internos
// não vazam para o cliente.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "dados inválidos"))
	case errors.Is(err, domain.ErrEmptyOrder):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("EMPTY_ORDER", "pedido sem itens"))
	case errors.Is(err, domain.ErrMultiSupplier):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MULTI_SUPPLIER", "itens de fornecedores distintos no mesmo pedido"))
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_TRANSITION", "transição de status não permitida"))
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "credenciais inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acesso negado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "recurso não encontrado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("EMAIL_EXISTS", "email já registrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("DUPLICATE", "recurso já existe"))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("CONFLICT", "operação conflita com o estado atual"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "erro interno"))
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "corpo inválido"))
}
