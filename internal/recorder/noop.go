package recorder

import "SpotBoard/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *model.PriceSnapshot) error { return nil }
func (n *NoopRecorder) RecordBoardEvent(_ *BoardEvent) error        { return nil }
func (n *NoopRecorder) Close() error                                { return nil }
