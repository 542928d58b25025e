package cipher

import "encoding/binary"

// Block is one 64-bit FEAL block split into its two 32-bit halves.
// Byte order within each half is big-endian: byte 0 of the 8-byte wire
// representation is the most significant byte of Left.
type Block struct {
	Left  uint32
	Right uint32
}

// DecodeBlock reads an 8-byte big-endian wire block into a Block.
func DecodeBlock(b [8]byte) Block {
	return Block{
		Left:  binary.BigEndian.Uint32(b[0:4]),
		Right: binary.BigEndian.Uint32(b[4:8]),
	}
}

// EncodeBlock writes a Block back to its 8-byte big-endian wire form.
func EncodeBlock(blk Block) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint32(b[0:4], blk.Left)
	binary.BigEndian.PutUint32(b[4:8], blk.Right)
	return b
}

// Equal reports whether two blocks hold the same halves.
func (blk Block) Equal(other Block) bool {
	return blk.Left == other.Left && blk.Right == other.Right
}
