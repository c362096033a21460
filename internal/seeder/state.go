package seeder

// State is a step of a seeding session. The zero value is
// StateDisconnected, the state before dialing.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateResetting
	StateGeneratingCategories
	StateGeneratingUsers
	StateGeneratingProducts
	StateGeneratingOrders
	StateVerifying
	StateDisconnecting
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateDisconnected:         "disconnected",
	StateConnecting:           "connecting",
	StateConnected:            "connected",
	StateResetting:            "resetting",
	StateGeneratingCategories: "generating categories",
	StateGeneratingUsers:      "generating users",
	StateGeneratingProducts:   "generating products",
	StateGeneratingOrders:     "generating orders",
	StateVerifying:            "verifying",
	StateDisconnecting:        "disconnecting",
	StateDone:                 "done",
	StateFailed:               "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
