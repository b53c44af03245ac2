package metrics

import "sync/atomic"

// SyncMetrics -- счетчики одного прогона full refresh.
type SyncMetrics struct {
	PagesFetched             atomic.Int32
	CardsSeen                atomic.Int32
	RowsAccepted             atomic.Int32
	SkippedMissingDimensions atomic.Int32
	SkippedMalformedNumeric  atomic.Int32
	BatchesInserted          atomic.Int32
}
