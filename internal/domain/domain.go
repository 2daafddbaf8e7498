package domain

import (
	"github.com/yungbote/commissioning-backend/internal/domain/plant"
	"github.com/yungbote/commissioning-backend/internal/domain/punchlist"
)

const (
	PunchStatusOpen   = punchlist.StatusOpen
	PunchStatusClosed = punchlist.StatusClosed
)

type System = plant.System
type Subsystem = plant.Subsystem
type Discipline = plant.Discipline
type Area = plant.Area
type Protocol = plant.Protocol
type ProtocolCounters = plant.ProtocolCounters

type PunchItem = punchlist.Item
type PunchTally = punchlist.Tally
type PunchTotals = punchlist.Totals
type PunchProgress = punchlist.Progress
type PunchFilter = punchlist.Filter
