package models

// Quote is a pre-invoice proposal (cotação) tied to a client.
//
// Status is derived by a database trigger from the stage and is never
// written by the application.
type Quote struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Stage      string   `gorm:"column:etapa;size:255" json:"etapa"`
	Notes      *string  `gorm:"column:observacoes;type:text" json:"observacoes"`
	ClientID   uint     `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	TotalValue *float64 `gorm:"column:valor_total" json:"valor_total"`
	CreatedAt  *Date    `gorm:"column:data_criacao;default:CURRENT_DATE" json:"data_criacao"`
	Status     *string  `gorm:"column:status;size:64;->" json:"status"`
}

func (Quote) TableName() string { return "cotacoes" }
