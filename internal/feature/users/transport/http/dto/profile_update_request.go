// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// ProfileUpdateReq is the partial-update body for PUT /api/usuarios/perfil.
// Pointer fields distinguish "absent" (nil, leave unchanged) from "present":
// present values still have to satisfy their constraint, so a blank string is
// rejected rather than silently ignored.
type ProfileUpdateReq struct {
	Nome  *string `json:"nome" binding:"omitempty,min=1"`
	Cnpj  *string `json:"cnpj" binding:"omitempty,len=14"`
	Cep   *string `json:"cep" binding:"omitempty,len=8"`
	Email *string `json:"email" binding:"omitempty,email"`
	Senha *string `json:"senha" binding:"omitempty,min=6"`
}
