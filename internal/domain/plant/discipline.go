package plant

// Discipline is an engineering discipline such as "Piping" or "Electrical".
// The name is not unique at the schema level; creation still rejects duplicates.
type Discipline struct {
	ID   uint   `gorm:"column:id_disciplina;primaryKey;autoIncrement" json:"id_disciplina"`
	Name string `gorm:"column:nombre_disciplina;type:varchar(50);not null" json:"nombre_disciplina"`
}

func (Discipline) TableName() string { return "disciplinas" }
