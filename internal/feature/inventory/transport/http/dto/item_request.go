// Package dto defines data transfer objects for the inventory feature's HTTP transport layer.
package dto

// ItemReq represents the request body for item creation and update.
// Localizacao may be blank; the default location is substituted downstream.
type ItemReq struct {
	Nome        string `json:"nome" binding:"required"`
	Descricao   string `json:"descricao" binding:"omitempty,max=500"`
	Quantidade  int    `json:"quantidade" binding:"gte=0"`
	Localizacao string `json:"localizacao"`
}
