package models

// Invoice is a payable document (boleto). Its aging status is computed at
// read time, see domain/invoice.
type Invoice struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CreatedAt   *Date   `gorm:"column:data_criacao" json:"data_criacao"`
	DueDate     Date    `gorm:"column:vencimento;not null;index" json:"vencimento"`
	Amount      float64 `gorm:"column:valor;not null" json:"valor"`
	Paid        bool    `gorm:"column:pago;not null;default:false" json:"pago"`
	PaymentDate *Date   `gorm:"column:data_pagamento" json:"data_pagamento"`
	ClientID    uint    `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	QuoteID     *uint   `gorm:"column:cotacao_id;index" json:"cotacao_id"`
}

func (Invoice) TableName() string { return "boletos" }
