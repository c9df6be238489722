package dto

// CreateCustomerRequest entrada para cadastrar um cliente. Só o nome é
// obrigatório; telefone, email e endereço são opcionais.
type CreateCustomerRequest struct {
	Name    string `json:"nome" validate:"required,min=1,max=255"`
	Phone   string `json:"telefone" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"endereco"`
}

// UpdateCustomerRequest entrada para atualizar um cliente.
type UpdateCustomerRequest struct {
	Name    *string `json:"nome" validate:"omitempty,min=1,max=255"`
	Phone   *string `json:"telefone" validate:"omitempty,max=20"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"endereco"`
}

// CustomerResponse saída de um cliente.
type CustomerResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Phone        string `json:"telefone"`
	Email        string `json:"email"`
	Address      string `json:"endereco"`
	RegisteredAt string `json:"data_cadastro"` // somente data (2006-01-02)
}
