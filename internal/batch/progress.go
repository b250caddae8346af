package batch

import "fmt"

// Status is the state of one sentence within a run.
type Status string

const (
	StatusPending  Status = "pending"
	StatusWorking  Status = "working"
	StatusComplete Status = "complete"
	StatusCanceled Status = "canceled"
)

// Event is emitted as each sentence moves through a run.
type Event struct {
	Index     int
	Sentence  string
	Status    Status
	Derivable bool // set once Status is StatusComplete
}

// FormatProgress formats an Event as a human-readable status line.
func FormatProgress(ev Event) string {
	switch ev.Status {
	case StatusPending:
		return fmt.Sprintf("  ○ #%d %q (pending)", ev.Index, ev.Sentence)
	case StatusWorking:
		return fmt.Sprintf("  ● #%d %q...", ev.Index, ev.Sentence)
	case StatusComplete:
		verdict := "not derivable"
		if ev.Derivable {
			verdict = "derivable"
		}
		return fmt.Sprintf("  ✓ #%d %q %s", ev.Index, ev.Sentence, verdict)
	case StatusCanceled:
		return fmt.Sprintf("  ✗ #%d %q canceled", ev.Index, ev.Sentence)
	default:
		return fmt.Sprintf("  ? #%d %q (unknown status)", ev.Index, ev.Sentence)
	}
}
