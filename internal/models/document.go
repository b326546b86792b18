package models

import "time"

// RecipeDocument is the row a SQL backend keeps the serialized catalog in.
// Name identifies the document so several catalogs can share one table.
type RecipeDocument struct {
	Name      string `gorm:"primaryKey;type:varchar(100)"`
	Data      []byte
	UpdatedAt time.Time
}
