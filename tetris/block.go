package tetris

// Block is a live piece: a kind from the catalog plus the rotation and
// translation applied to it. Blocks are values; a locked block is discarded
// once its cells have been copied into the grid.
//
// The zero Block has no shape. Rotating it is a no-op and Draw skips it.
type Block struct {
	shape        *Shape
	rotation     int
	rowOffset    int
	columnOffset int
}

// NewBlock creates a block of kind k already shifted to its spawn position.
func NewBlock(k Kind) Block {
	shape := ShapeOf(k)
	b := Block{shape: shape}
	spawn := shape.Spawn()
	b.Move(spawn.Row, spawn.Column)
	return b
}

// Kind returns the block's tetromino kind, or KindNone for the zero Block.
func (b Block) Kind() Kind {
	if b.shape == nil {
		return KindNone
	}
	return b.shape.Kind()
}

// Rotation returns the current rotation state index.
func (b Block) Rotation() int {
	return b.rotation
}

// Offset returns the translation applied to the rotation state's cells.
func (b Block) Offset() Position {
	return Position{Row: b.rowOffset, Column: b.columnOffset}
}

// Move shifts the block unconditionally. Callers validate the result and
// move back if it collides.
func (b *Block) Move(rows, columns int) {
	b.rowOffset += rows
	b.columnOffset += columns
}

// Rotate advances to the next rotation state, wrapping after the last one.
func (b *Block) Rotate() {
	if b.shape == nil {
		return
	}
	b.rotation++
	if b.rotation == b.shape.StateCount() {
		b.rotation = 0
	}
}

// UndoRotation is the exact inverse of Rotate.
func (b *Block) UndoRotation() {
	if b.shape == nil {
		return
	}
	b.rotation--
	if b.rotation == -1 {
		b.rotation = b.shape.StateCount() - 1
	}
}

// Cells returns the absolute grid positions the block occupies.
func (b Block) Cells() [4]Position {
	var cells [4]Position
	if b.shape != nil {
		cells = b.shape.State(b.rotation)
	}
	for i := range cells {
		cells[i] = cells[i].Add(b.rowOffset, b.columnOffset)
	}
	return cells
}

// Draw renders the block's cells with the top-left grid corner at the given
// pixel offset.
func (b Block) Draw(r Renderer, offsetX, offsetY int) {
	if b.shape == nil {
		return
	}
	c := CellColor(b.Kind())
	for _, cell := range b.Cells() {
		drawCell(r, cell, offsetX, offsetY, c)
	}
}
