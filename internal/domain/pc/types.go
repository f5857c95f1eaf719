package pc

type Status string

const (
	// StatusAvailable and StatusReserved are advisory display hints. The
	// reservation ledger is the only authority on whether a slot is free.
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusDisabled  Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusDisabled:
		return true
	default:
		return false
	}
}

// Specs describes the hardware fitted to a PC.
type Specs struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Monitor string `json:"monitor"`
}
