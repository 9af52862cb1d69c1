package courses

const (
	OfferedLabel    = "When Offered:"
	RequisitesLabel = "Prerequisites/Corequisites:"
)

type scannerState int

const (
	stateScanning scannerState = iota
	stateOfferedValue
	stateRequisites
)

type fragmentKind int

const (
	fragmentValue fragmentKind = iota
	fragmentOfferedLabel
	fragmentRequisitesLabel
)

type scannerAction int

const (
	actionSkip scannerAction = iota
	actionClassifyOffered
	actionAppendRequisite
)

type transition struct {
	action scannerAction
	next   scannerState
}

// Rows are indexed by scannerState, columns by fragmentKind
var transitions = [...][3]transition{
	stateScanning: {
		fragmentValue:           {actionSkip, stateScanning},
		fragmentOfferedLabel:    {actionSkip, stateOfferedValue},
		fragmentRequisitesLabel: {actionSkip, stateRequisites},
	},
	stateOfferedValue: {
		fragmentValue:           {actionClassifyOffered, stateScanning},
		fragmentOfferedLabel:    {actionSkip, stateOfferedValue},
		fragmentRequisitesLabel: {actionSkip, stateRequisites},
	},
	stateRequisites: {
		fragmentValue:           {actionAppendRequisite, stateRequisites},
		fragmentOfferedLabel:    {actionSkip, stateOfferedValue},
		fragmentRequisitesLabel: {actionSkip, stateRequisites},
	},
}

func kindOf(fragment string) fragmentKind {
	switch fragment {
	case OfferedLabel:
		return fragmentOfferedLabel
	case RequisitesLabel:
		return fragmentRequisitesLabel
	default:
		return fragmentValue
	}
}

// step returns the action to take on a fragment of the given kind and the
// state that follows it.
func step(state scannerState, kind fragmentKind) transition {
	return transitions[state][kind]
}

// Fields holds what the scanner found after the header fragments.
type Fields struct {
	Offered    Offered
	Requisites []string
}

// ScanFields walks the label/value fragments that follow the title and
// description. A label with no value after it is simply left empty.
func ScanFields(fragments []string) Fields {
	var fields Fields

	state := stateScanning
	for _, fragment := range fragments {
		move := step(state, kindOf(fragment))

		switch move.action {
		case actionClassifyOffered:
			fields.Offered |= ClassifyOffered(fragment)
		case actionAppendRequisite:
			fields.Requisites = append(fields.Requisites, fragment)
		}

		state = move.next
	}

	return fields
}
