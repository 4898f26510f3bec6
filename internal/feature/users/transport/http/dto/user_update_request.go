package dto

// UserUpdateReq is the full-overwrite body for PUT /api/usuarios/:id.
// Everything except the password is required.
type UserUpdateReq struct {
	Nome  string  `json:"nome" binding:"required"`
	Cnpj  string  `json:"cnpj" binding:"required,len=14"`
	Cep   string  `json:"cep" binding:"required,len=8"`
	Email string  `json:"email" binding:"required,email"`
	Senha *string `json:"senha" binding:"omitempty,min=6"`
}
