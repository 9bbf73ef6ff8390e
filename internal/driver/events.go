package driver

// Stage is the step a file is in while CheckDir works on it.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLoad
	StageLex
	StageParse
)

// Status is reported together with a Stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusCached
	StatusError
)

// Event describes progress of one file. File is the path relative to the
// checked directory.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Observer receives CheckDir events. It is called from worker goroutines
// and must be safe for concurrent use.
type Observer func(Event)

func (o Observer) emit(file string, stage Stage, status Status) {
	if o != nil {
		o(Event{File: file, Stage: stage, Status: status})
	}
}
