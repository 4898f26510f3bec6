// Package dto defines the wire types returned by the ViaCEP API.
package dto

import "encoding/json"

// EnderecoResponse mirrors the JSON body of /ws/{cep}/json/.
// ViaCEP signals a nonexistent code by adding an "erro" field to an otherwise
// empty body; its value has varied between a bool and a string across API
// revisions, so it is kept raw and only checked for presence.
type EnderecoResponse struct {
	Cep         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	Erro        json.RawMessage `json:"erro"`
}

// NotFound reports whether the provider flagged the code as nonexistent.
func (r *EnderecoResponse) NotFound() bool {
	return len(r.Erro) > 0 && string(r.Erro) != "false" && string(r.Erro) != `"false"`
}
