// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /auth/registrar endpoint.
// Gin binding tags enforce the field constraints: bare-digit lengths for
// cnpj/cep, email format and minimum password length.
type RegisterReq struct {
	Nome  string `json:"nome" binding:"required"`
	Cnpj  string `json:"cnpj" binding:"required,len=14"`
	Cep   string `json:"cep" binding:"required,len=8"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}
