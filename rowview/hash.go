package rowview

import (
	xxhash "github.com/cespare/xxhash/v2"
)

// Hash computes an xxhash64 fingerprint of this RowView's (name, value) pairs,
// in column order. Values are hashed by their ColumnType string
// representation, so equal fields always produce equal hashes.
func (r *RowView) Hash() (uint64, error) {
	hasher := xxhash.New()
	for _, c := range r.table.Columns() {
		v, err := r.Get(c.Name)
		if err != nil {
			return 0, err
		}
		hasher.WriteString(c.Name)
		hasher.Write([]byte{0})
		hasher.WriteString(formatValue(c.Column, v))
		hasher.Write([]byte{0})
	}
	return hasher.Sum64(), nil
}
