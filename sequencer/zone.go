package sequencer

// ZoneKind picks the effect a zone's runs use
type ZoneKind int

const (
	KindLimb ZoneKind = iota // gradients, effects-length runs
	KindHead                 // pulses
	KindHand                 // random flicker
	KindBody                 // gradients, fixed-length runs
)

func (k ZoneKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindHand:
		return "hand"
	case KindBody:
		return "body"
	default:
		return "limb"
	}
}

// ZoneSpec is one entry of the costume's zone table
type ZoneSpec struct {
	Name string
	Kind ZoneKind
}

// DefaultZones is the costume layout, in output order. A zone's id is its
// index here.
var DefaultZones = []ZoneSpec{
	{"head_front", KindHead},
	{"head_back", KindHead},
	{"body_front", KindBody},
	{"body_back", KindBody},
	{"left_hand_front", KindHand},
	{"left_hand_back", KindHand},
	{"right_hand_front", KindHand},
	{"right_hand_back", KindHand},
	{"left_leg_front", KindLimb},
	{"left_leg_back", KindLimb},
	{"right_leg_front", KindLimb},
	{"right_leg_back", KindLimb},
}
