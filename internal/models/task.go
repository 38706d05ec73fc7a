package models

type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"column:titulo;size:255;not null" json:"titulo"`
	Description string `gorm:"column:descricao;type:text;not null" json:"descricao"`
}

func (Task) TableName() string { return "tarefas" }
