package model

// Trajet represents a scheduled trip between two agencies with a seat
// count. Dates and times keep the DATE / TIME column text submitted
// by the forms ("2006-01-02" and "15:04" or "15:04:05"); they are
// combined into one instant only when compared.
type Trajet struct {
	ID              uint      `json:"id_trajet" gorm:"column:id_trajet;primaryKey"`
	UserID          uint      `json:"id_user" gorm:"column:id_user;not null"`
	AgenceDepartID  uint      `json:"id_agence_depart" gorm:"column:id_agence_depart;not null"`
	AgenceArriveeID uint      `json:"id_agence_arrivee" gorm:"column:id_agence_arrivee;not null"`
	DateDepart      DateOnly  `json:"date_depart" gorm:"column:date_depart;type:date"`
	HeureDepart     TimeOfDay `json:"heure_depart" gorm:"column:heure_depart;type:time"`
	DateArrivee     DateOnly  `json:"date_arrivee" gorm:"column:date_arrivee;type:date"`
	HeureArrivee    TimeOfDay `json:"heure_arrivee" gorm:"column:heure_arrivee;type:time"`
	Place           int       `json:"place" gorm:"column:place"`

	// Relations
	Auteur  *User   `json:"auteur,omitempty" gorm:"foreignKey:UserID"`
	Depart  *Agence `json:"depart,omitempty" gorm:"foreignKey:AgenceDepartID"`
	Arrivee *Agence `json:"arrivee,omitempty" gorm:"foreignKey:AgenceArriveeID"`
}

// TableName keeps the source schema's table name.
func (Trajet) TableName() string { return "trajet" }
