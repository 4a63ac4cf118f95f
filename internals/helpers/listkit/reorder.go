// file: internals/helpers/listkit/reorder.go
package listkit

import "github.com/google/uuid"

// OrderPair: satu entri batch reorder yang dikirim ke endpoint /reorder.
type OrderPair struct {
	ID           uuid.UUID `json:"id"`
	DisplayOrder int       `json:"display_order"`
}

// Move memindahkan elemen index from ke index to (posisi drop = index baris
// target); baris di antaranya bergeser. Drop ke diri sendiri = no-op.
func Move(ids []uuid.UUID, from, to int) []uuid.UUID {
	n := len(ids)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		out := make([]uuid.UUID, n)
		copy(out, ids)
		return out
	}
	out := make([]uuid.UUID, 0, n)
	moved := ids[from]
	for i, id := range ids {
		if i == from {
			continue
		}
		out = append(out, id)
	}
	out = append(out[:to], append([]uuid.UUID{moved}, out[to:]...)...)
	return out
}

// Pairs menurunkan display_order zero-based dari posisi list hasil Move.
func Pairs(ids []uuid.UUID) []OrderPair {
	out := make([]OrderPair, len(ids))
	for i, id := range ids {
		out[i] = OrderPair{ID: id, DisplayOrder: i}
	}
	return out
}
