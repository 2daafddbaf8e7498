package punchlist

import "github.com/yungbote/commissioning-backend/internal/domain/plant"

const (
	StatusOpen   = "Abierto"
	StatusClosed = "Cerrado"

	// DueDateLayout is how fecha_compromiso is persisted.
	DueDateLayout = "2006-01-02"
)

// Item is one punch-list entry. The whole table is replaced on every import.
type Item struct {
	ID          uint             `gorm:"column:id_punchlist;primaryKey;autoIncrement" json:"id_punchlist"`
	SubsystemID uint             `gorm:"column:id_subsistema;index" json:"id_subsistema"`
	Subsystem   *plant.Subsystem `gorm:"foreignKey:SubsystemID;references:ID" json:"-"`
	Discipline  string           `gorm:"column:disciplina;type:varchar(100)" json:"disciplina"`
	Category    string           `gorm:"column:categoria;type:varchar(50)" json:"categoria"`
	DueDate     *string          `gorm:"column:fecha_compromiso;type:varchar(20)" json:"fecha_compromiso"`
	Status      string           `gorm:"column:estado;type:varchar(20)" json:"estado"`
	DaysOverdue *int             `gorm:"column:dias_retraso" json:"dias_retraso"`
}

func (Item) TableName() string { return "punchlist" }

// Tally counts items per status. Both well-known statuses are always present.
type Tally map[string]int64

func NewTally() Tally {
	return Tally{StatusOpen: 0, StatusClosed: 0}
}

type Totals struct {
	Total  int64 `json:"total"`
	Open   int64 `json:"abiertos"`
	Closed int64 `json:"cerrados"`
}

type Progress struct {
	Total   int64   `json:"total"`
	Closed  int64   `json:"cerrados"`
	Percent float64 `json:"porcentaje"`
}

// Filter narrows punch-list queries. A zero SubsystemID means the whole table.
type Filter struct {
	SubsystemID uint
}
