package models

type FetchOutcome int

const (
	Failed FetchOutcome = iota
	Succeeded
	BadStatus
	Disallowed
)

func (o FetchOutcome) String() string {
	switch o {
	case Succeeded:
		return "Succeeded"
	case BadStatus:
		return "BadStatus"
	case Disallowed:
		return "Disallowed"
	default:
		return "Failed"
	}
}
