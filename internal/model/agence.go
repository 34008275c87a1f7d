package model

// Agence represents a named location usable as a trip endpoint.
type Agence struct {
	ID  uint   `json:"id_agence" gorm:"column:id_agence;primaryKey"`
	Nom string `json:"agence" gorm:"column:agence;size:70;not null"`
}

// TableName keeps the source schema's table name.
func (Agence) TableName() string { return "agence" }
