package contact

// Status summarises how a submit attempt ended.
type Status int

const (
	// StatusInvalid means validation failed and nothing was sent.
	StatusInvalid Status = iota
	// StatusSimulated means no action was configured and the local delivery
	// completed.
	StatusSimulated
	// StatusDelivered means the action answered with a 2xx status.
	StatusDelivered
	// StatusFailed means the request errored or answered non-2xx.
	StatusFailed
	// StatusBusy means another attempt was still in flight.
	StatusBusy
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusSimulated:
		return "simulated"
	case StatusDelivered:
		return "delivered"
	case StatusFailed:
		return "failed"
	case StatusBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Outcome is the completion signal of one submit attempt. Payload is set once
// validation passed; Err is set for Invalid, Failed and Busy.
type Outcome struct {
	Status  Status
	Payload *Payload
	Err     error
}

// OK reports whether the attempt ended in a simulated or real delivery.
func (o Outcome) OK() bool {
	return o.Status == StatusSimulated || o.Status == StatusDelivered
}
