package plant

// System is the root classification node of the plant breakdown.
type System struct {
	ID   uint   `gorm:"column:id_sistema;primaryKey;autoIncrement" json:"id_sistema"`
	Code string `gorm:"column:codigo_sistema;type:varchar(20);uniqueIndex;not null" json:"codigo_sistema"`
	Name string `gorm:"column:nombre_sistema;type:varchar(100);not null" json:"nombre_sistema"`
}

func (System) TableName() string { return "sistemas" }
