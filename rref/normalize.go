// SPDX-License-Identifier: MIT

package rref

// normalize prepares the working matrix for the per-row loop.
//
// Implementation:
//   - Stage 1: stable partition, non-zero rows first. Each non-zero row is
//     bubbled up with adjacent swaps so the relative order of the non-zero
//     rows (and of the zero rows) is preserved.
//   - Stage 2: if every row is zero, stop; nothing may be divided.
//   - Stage 3: make the top-left entry a leading 1. When m[0][0] is zero, the
//     first lower non-zero row with a non-zero column-0 entry is swapped in.
//     When column 0 is zero in every row it is left alone; the per-row loop
//     then finds row 0's pivot further right.
//
// It reports whether (0, 0) now holds a leading 1. The per-row loop then
// takes column 0 as row 0's pivot without searching again: after scaling,
// row 0 is no longer on the input's scale, which the pivot tolerance is.
//
// Errors:
//   - matrix.ErrNaNInf when 1/m[0][0] or the scaled row overflows.
//
// Complexity:
//   - Time O(m²·n) worst case for the partition (adjacent swaps), Space O(1).
func (rd *reducer) normalize() (bool, error) {
	rows := rd.m.Rows()

	nonZero := 0 // rows [0, nonZero) are non-zero after the partition
	for i := 0; i < rows; i++ {
		if rd.leading(i) < 0 {
			continue
		}
		for k := i; k > nonZero; k-- {
			rd.swap(k-1, k)
		}
		nonZero++
	}
	if nonZero == 0 {
		return false, nil
	}

	if rd.isZero(rd.at(0, 0)) {
		for i := 1; i < nonZero; i++ {
			if !rd.isZero(rd.at(i, 0)) {
				rd.swap(0, i)
				break
			}
		}
	}
	v := rd.at(0, 0)
	if rd.isZero(v) {
		return false, nil
	}
	if err := rd.scale(0, 1/v); err != nil {
		return false, err
	}
	rd.set(0, 0, 1)

	return true, nil
}
