package editor

// Screen identifies the top-level view the interactive loop renders.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenEditing
	ScreenExiting
	ScreenLoading
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenEditing:
		return "editing"
	case ScreenExiting:
		return "exiting"
	case ScreenLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// EditField selects which buffer receives input. EditNone means no pair is
// being composed.
type EditField int

const (
	EditNone EditField = iota
	EditKey
	EditValue
)

func (f EditField) String() string {
	switch f {
	case EditNone:
		return "none"
	case EditKey:
		return "key"
	case EditValue:
		return "value"
	default:
		return "unknown"
	}
}

// LoadPhase is a coarse progress marker for load operations. LoadNone means
// no load has been recorded.
type LoadPhase int

const (
	LoadNone LoadPhase = iota
	// LoadInProgress is part of the enumeration but no transition reaches it.
	LoadInProgress
	LoadDone
)

func (p LoadPhase) String() string {
	switch p {
	case LoadNone:
		return "none"
	case LoadInProgress:
		return "load"
	case LoadDone:
		return "done"
	default:
		return "unknown"
	}
}
