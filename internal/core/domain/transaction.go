package domain

// TxStatus is the shared lifecycle state for PPOB payments, pulsa topups and
// bank transfers: pending -> processing -> (completed | failed | cancelled).
type TxStatus string

const (
	TxPending    TxStatus = "pending"
	TxProcessing TxStatus = "processing"
	TxCompleted  TxStatus = "completed"
	TxFailed     TxStatus = "failed"
	TxCancelled  TxStatus = "cancelled"
)

// txStatusRank orders statuses so that a write can never regress state.
// Terminal states share the top rank: whichever lands first wins, and an
// equal-or-lower-precedence write is a no-op.
var txStatusRank = map[TxStatus]int{
	TxPending:    0,
	TxProcessing: 1,
	TxCompleted:  2,
	TxFailed:     2,
	TxCancelled:  2,
}

// Supersedes reports whether writing next over current advances the
// lifecycle. Equal or lower precedence means the write must be dropped.
func (next TxStatus) Supersedes(current TxStatus) bool {
	return txStatusRank[next] > txStatusRank[current]
}

// IsTerminal returns true for completed, failed and cancelled.
func (s TxStatus) IsTerminal() bool {
	return txStatusRank[s] == 2
}
