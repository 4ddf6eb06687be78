package tec

/*
evt.go contains EventType constants which are (only) used for tracing
once a [Tracer] has been registered through [EnableDebug].
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list and descriptions.
*/
type EventType int

const (
	EventNone EventType = 0   // NO events
	EventAll  EventType = 255 // ALL events
)

const (
	EventParse      EventType = 1 << iota //  1: Textual notation resolved
	EventConvert                          //  2: Gregorian instant converted
	EventDisplay                          //  4: Offset differs at display time
	EventConstraint                       //  8: Constraint rejected a value
)

var eventNames = map[EventType]string{
	EventNone:       "none",
	EventAll:        "all",
	EventParse:      "parse",
	EventConvert:    "convert",
	EventDisplay:    "display",
	EventConstraint: "constraint",
}

func (r EventType) String() string {
	if s, ok := eventNames[r]; ok {
		return s
	}
	return "event(" + itoa(int(r)) + ")"
}
