package dto

import "controlastock_backend/internal/feature/inventory/domain/entity"

// ItemResp is the public view of an inventory item. The owner reference is
// implicit: callers only ever see their own items.
type ItemResp struct {
	ID          uint   `json:"id"`
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao"`
	Quantidade  int    `json:"quantidade"`
	Localizacao string `json:"localizacao"`
}

// ItemRespFromEntity maps a domain item to its public view.
func ItemRespFromEntity(i *entity.Item) ItemResp {
	return ItemResp{
		ID:          i.ID,
		Nome:        i.Nome,
		Descricao:   i.Descricao,
		Quantidade:  i.Quantidade,
		Localizacao: i.Localizacao,
	}
}

// ItemRespListFromEntities maps a slice of domain items to their public views.
func ItemRespListFromEntities(items []entity.Item) []ItemResp {
	out := make([]ItemResp, len(items))
	for i := range items {
		out[i] = ItemRespFromEntity(&items[i])
	}
	return out
}
