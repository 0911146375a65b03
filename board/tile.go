package board

type Mark int

const (
	MarkNone Mark = iota
	// Flag protects the tile from being uncovered.
	MarkFlag
	MarkUnsure
)

func (m Mark) Next() Mark {
	switch m {
	case MarkNone:
		return MarkFlag
	case MarkFlag:
		return MarkUnsure
	default:
		return MarkNone
	}
}

func (m Mark) String() string {
	switch m {
	case MarkFlag:
		return "flag"
	case MarkUnsure:
		return "unsure"
	default:
		return "none"
	}
}

// Cover is either up, carrying a Mark, or down.
// Mark is meaningless once Down is set.
type Cover struct {
	Down bool
	Mark Mark
}

func (c Cover) IsUp() bool {
	return !c.Down
}

func (c Cover) IsFlagged() bool {
	return !c.Down && c.Mark == MarkFlag
}

type ObjectKind int

const (
	ObjectBlank ObjectKind = iota
	ObjectHint
	ObjectMine
)

type Object struct {
	Kind ObjectKind
	// number of neighbouring mines, 1..8, only set for ObjectHint
	Hint uint8
}

type Tile struct {
	Cover  Cover
	Object Object
}

func (t Tile) IsMine() bool {
	return t.Object.Kind == ObjectMine
}

func (t Tile) IsUncoverable() bool {
	return t.Cover.IsUp() && t.Cover.Mark != MarkFlag
}

func (t Tile) Hint() (int, bool) {
	if t.Object.Kind != ObjectHint {
		return 0, false
	}
	return int(t.Object.Hint), true
}

func (t Tile) String() string {
	if t.Cover.IsUp() {
		switch t.Cover.Mark {
		case MarkFlag:
			return "F"
		case MarkUnsure:
			return "?"
		}
		return "#"
	}
	switch t.Object.Kind {
	case ObjectMine:
		return "*"
	case ObjectHint:
		return string(rune('0' + t.Object.Hint))
	}
	return "."
}
