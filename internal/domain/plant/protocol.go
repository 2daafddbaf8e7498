package plant

// Protocol tracks checklist counters for one subsystem/area/discipline combination.
// The counters are stored as given; nothing ties them together.
type Protocol struct {
	ID           uint        `gorm:"column:id_protocolo;primaryKey;autoIncrement" json:"id_protocolo"`
	SubsystemID  uint        `gorm:"column:id_subsistema;index" json:"id_subsistema"`
	Subsystem    *Subsystem  `gorm:"foreignKey:SubsystemID;references:ID" json:"-"`
	AreaID       uint        `gorm:"column:id_area;index" json:"id_area"`
	Area         *Area       `gorm:"foreignKey:AreaID;references:ID" json:"-"`
	DisciplineID uint        `gorm:"column:id_disciplina;index" json:"id_disciplina"`
	Discipline   *Discipline `gorm:"foreignKey:DisciplineID;references:ID" json:"-"`

	Universe int `gorm:"column:universo;not null" json:"universo"`
	Opened   int `gorm:"column:aperturados;not null" json:"aperturados"`
	Closed   int `gorm:"column:cerrados;not null" json:"cerrados"`
	Open     int `gorm:"column:abiertos;not null" json:"abiertos"`
	Aconex   int `gorm:"column:aconex;not null" json:"aconex"`
}

func (Protocol) TableName() string { return "protocolos" }

// ProtocolCounters is the mutable part of a Protocol.
type ProtocolCounters struct {
	Universe int
	Opened   int
	Closed   int
	Open     int
	Aconex   int
}

func (p *Protocol) SetCounters(c ProtocolCounters) {
	p.Universe = c.Universe
	p.Opened = c.Opened
	p.Closed = c.Closed
	p.Open = c.Open
	p.Aconex = c.Aconex
}
