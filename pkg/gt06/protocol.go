package gt06

// Protocol numbers used by this client. Names follow the direction from
// the device's point of view: frames this client sends, and the server
// frames it expects in return.
const (
	protoLogin          byte = 0x01
	protoLocation       byte = 0x12
	protoHeartbeat      byte = 0x13
	protoDeviceCmdReply byte = 0x15
	protoLocationStatus byte = 0x16
	protoServerCommand  byte = 0x80
)

// State is a Session's position in its connection/login lifecycle.
type State int

// Session states, matching the reference firmware's state names.
const (
	Idle State = iota
	Connecting
	Connected
	LoggedIn
	RestartPending
	Closed
)

// String returns a human-readable state name, implementing fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	case LoggedIn:
		return "LoggedIn"
	case RestartPending:
		return "RestartPending"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}
