package recorder

import "SpotBoard/internal/model"

// Board event kinds.
const (
	EventMetals        = "METALS"
	EventManual        = "MANUAL"
	EventColorTest     = "COLOR_TEST"
	EventTimeoutNotice = "TIMEOUT_NOTICE"
)

// BoardEvent records one message pushed to (or refused by) the board.
type BoardEvent struct {
	Kind    string
	Message string
	Status  string // model.StatusSuccess or model.StatusError
}

// Recorder persists price history and board activity for later inspection.
type Recorder interface {
	RecordSnapshot(snap *model.PriceSnapshot) error
	RecordBoardEvent(evt *BoardEvent) error
	Close() error
}
