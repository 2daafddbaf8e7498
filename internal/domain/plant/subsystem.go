package plant

type Subsystem struct {
	ID       uint    `gorm:"column:id_subsistema;primaryKey;autoIncrement" json:"id_subsistema"`
	SystemID uint    `gorm:"column:id_sistema;index" json:"id_sistema"`
	System   *System `gorm:"foreignKey:SystemID;references:ID" json:"-"`
	Code     string  `gorm:"column:codigo_subsistema;type:varchar(20);uniqueIndex;not null" json:"codigo_subsistema"`
	Name     string  `gorm:"column:nombre_subsistema;type:varchar(100);not null" json:"nombre_subsistema"`
}

func (Subsystem) TableName() string { return "subsistemas" }
