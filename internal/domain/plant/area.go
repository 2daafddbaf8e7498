package plant

type Area struct {
	ID   uint   `gorm:"column:id_area;primaryKey;autoIncrement" json:"id_area"`
	Name string `gorm:"column:nombre_area;type:varchar(100);uniqueIndex;not null" json:"nombre_area"`
}

func (Area) TableName() string { return "areas" }
