// Package authz concentra as verificações de autorização do domínio.
// Todo caso de uso que muta um recurso passa por AssertOwner/AssertRole;
// não há checagem de posse duplicada em handlers.
package authz

import (
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/entity"
)

// Identity descreve o chamador autenticado, resolvido pela camada externa de auth.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin indica se o chamador tem papel administrativo.
func (id Identity) IsAdmin() bool {
	return id.Role == entity.RoleAdmin
}

// AssertOwner falha com ErrForbidden quando o chamador não é o dono do recurso
// nem administrador.
func AssertOwner(id Identity, ownerUserID string) error {
	if id.IsAdmin() {
		return nil
	}
	if id.UserID == "" || id.UserID != ownerUserID {
		return domain.ErrForbidden
	}
	return nil
}

// AssertRole falha com ErrForbidden quando o papel do chamador não está entre os exigidos.
// Admin sempre passa.
func AssertRole(id Identity, roles ...string) error {
	if id.IsAdmin() {
		return nil
	}
	for _, r := range roles {
		if id.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}

// AssertAnyOwner falha com ErrForbidden quando o chamador não é dono de nenhum
// dos recursos envolvidos (ex.: transição de pedido permitida à loja ou ao
// fornecedor) nem administrador.
func AssertAnyOwner(id Identity, ownerUserIDs ...string) error {
	if id.IsAdmin() {
		return nil
	}
	for _, owner := range ownerUserIDs {
		if owner != "" && id.UserID == owner {
			return nil
		}
	}
	return domain.ErrForbidden
}
