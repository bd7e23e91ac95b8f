package domain

// NodeType classifies a diagram node.
type NodeType string

const (
	NodeCoreSystem   NodeType = "Core System"
	NodeIncomeSystem NodeType = "IncomeSystem"
	NodeExternal     NodeType = "External"
	NodeMiddleware   NodeType = "Middleware"
)

// Counterpart role values on an integration flow. Any other value is
// skipped during graph and diagram construction.
const (
	RoleProducer = "PRODUCER"
	RoleConsumer = "CONSUMER"
)

// Level classifies a capability tree node.
type Level string

const (
	LevelL1     Level = "L1"
	LevelL2     Level = "L2"
	LevelL3     Level = "L3"
	LevelSystem Level = "System"
	LevelRoot   Level = "Root"
)
