package caves

import "slices"

// Select returns fallback when dimension is blacklisted and primary otherwise.
func Select(dimension int, blacklist []int, primary, fallback ColumnGenerator) ColumnGenerator {
	if slices.Contains(blacklist, dimension) {
		return fallback
	}
	return primary
}

// Observe wraps next so that fn sees every decision the column's Carve
// accepted without error. The column may still have left the block as it
// was. fn is called from whichever goroutine generates the chunk and an error
// from it aborts the column.
func Observe(next ColumnGenerator, fn func(Decision) error) ColumnGenerator {
	return &observer{next: next, fn: fn}
}

type observer struct {
	next ColumnGenerator
	fn   func(Decision) error
}

func (o *observer) GenerateColumn(col Column, chunkX, chunkZ int) error {
	return o.next.GenerateColumn(observedColumn{Column: col, fn: o.fn}, chunkX, chunkZ)
}

type observedColumn struct {
	Column
	fn func(Decision) error
}

func (c observedColumn) Carve(d Decision) error {
	if err := c.Column.Carve(d); err != nil {
		return err
	}
	return c.fn(d)
}
