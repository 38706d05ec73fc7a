package models

// Client is a customer company (cliente).
type Client struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"column:nome;size:255;not null" json:"nome"`
	LegalName *string `gorm:"column:razao_social;size:255" json:"razao_social"`
	TaxID     string  `gorm:"column:cnpj;size:32;not null;uniqueIndex" json:"cnpj"`
	Phone     *string `gorm:"column:telefone;size:32" json:"telefone"`
	Email     *string `gorm:"column:email;size:255" json:"email"`
}

func (Client) TableName() string { return "clientes" }
