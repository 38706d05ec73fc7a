package quote

import "github.com/BruksfildServices01/beanflow-api/internal/textnorm"

// DefaultStage is used when a quote is created without a stage.
const DefaultStage = "Realizar orcamento"

// CreateStage returns the stage to persist on creation.
func CreateStage(stage *string) string {
	if stage == nil || *stage == "" {
		return DefaultStage
	}
	return textnorm.StripAccents(*stage)
}

// UpdateStage returns the stage to persist on update, or nil to keep the
// stored one.
func UpdateStage(stage *string) *string {
	if stage == nil || *stage == "" {
		return nil
	}
	s := textnorm.StripAccents(*stage)
	return &s
}
