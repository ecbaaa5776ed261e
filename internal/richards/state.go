package richards

// State holds the scheduling status bits of a task.
type State uint8

const (
	FlagPacketPending State = 1 << iota
	FlagTaskWaiting
	FlagTaskHolding
)

// Canonical states.
const (
	StateRunning           State = 0
	StateWaiting                 = FlagTaskWaiting
	StateWaitingWithPacket       = FlagTaskWaiting | FlagPacketPending
	StatePacketPending           = FlagPacketPending
)

func (s State) Has(flag State) bool {
	return s&flag != 0
}

func (s *State) set(flag State, on bool) {
	if on {
		*s |= flag
	} else {
		*s &^= flag
	}
}

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsHoldingOrWaiting() bool {
	return s.Has(FlagTaskHolding) || (!s.Has(FlagPacketPending) && s.Has(FlagTaskWaiting))
}

func (s State) IsWaiting() bool {
	return s == StateWaiting
}

func (s State) IsWaitingWithPacket() bool {
	return s == StateWaitingWithPacket
}

func (s State) String() string {
	switch {
	case s.IsRunning():
		return "running"
	case s.IsWaiting():
		return "waiting"
	case s.IsWaitingWithPacket():
		return "waiting-with-packet"
	case s == StatePacketPending:
		return "packet-pending"
	}

	str := ""
	for _, f := range []struct {
		flag State
		name string
	}{
		{FlagPacketPending, "packet-pending"},
		{FlagTaskWaiting, "waiting"},
		{FlagTaskHolding, "holding"},
	} {
		if s.Has(f.flag) {
			if str != "" {
				str += "|"
			}
			str += f.name
		}
	}
	return str
}
