package dto

import "controlastock_backend/internal/feature/auth/domain/entity"

// UserResp is the public view of a user. The password hash is never part of
// any response.
type UserResp struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Cnpj  string `json:"cnpj"`
	Cep   string `json:"cep"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserRespFromEntity maps a domain user to its public view.
func UserRespFromEntity(u *entity.User) UserResp {
	return UserResp{
		ID:    u.ID,
		Nome:  u.Nome,
		Cnpj:  u.Cnpj,
		Cep:   u.Cep,
		Email: u.Email,
		Role:  u.Role,
	}
}
