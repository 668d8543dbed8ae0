package filter

import "github.com/coredecomp/xzcore/internal/bitpack"

// ia64BranchTable selects, per instruction template (low 5 bits of a
// bundle's first byte), which of the bundle's three instruction slots
// may carry a branch displacement. Values are bitmasks over slots 0..2.
// This is the fixed table used unchanged by every public BCJ/IA64
// implementation.
var ia64BranchTable = [32]byte{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	4, 4, 6, 6, 0, 0, 7, 7,
	4, 4, 0, 0, 4, 4, 0, 0,
}

// ia64Filter implements the decode-direction IA64 BCJ filter: 16-byte
// aligned bundles, each potentially containing one or more branch
// instructions whose 21-bit immediate is rewritten from absolute back
// to PC-relative.
type ia64Filter struct{}

func newIA64() *ia64Filter { return &ia64Filter{} }

func (f *ia64Filter) Decode(pos uint32, buf []byte) int {
	n := len(buf) &^ 15
	for i := 0; i+16 <= n; i += 16 {
		template := buf[i] & 0x1F
		mask := ia64BranchTable[template]
		if mask == 0 {
			continue
		}
		for slot := 0; slot < 3; slot++ {
			if mask&(1<<uint(slot)) == 0 {
				continue
			}
			bitPos := 5 + slot*41

			instr := ia64ReadInstr(buf[i:i+16], bitPos)
			if (instr>>37)&0xF != 5 || (instr>>9)&0x7 != 0 {
				continue
			}

			src := uint32((instr >> 13) & 0xFFFFF)
			src |= uint32((instr>>36)&1) << 20

			src <<= 4
			dest := src - (pos + uint32(i))
			dest >>= 4

			instr &^= uint64(0x8FFFFF) << 13
			instr |= uint64(dest&0xFFFFF) << 13
			instr |= uint64((dest>>20)&1) << 36

			ia64WriteInstr(buf[i:i+16], bitPos, instr)
		}
	}
	return n
}

// ia64ReadInstr extracts the 41-bit instruction slot starting at bitPos
// within a 16-byte bundle.
func ia64ReadInstr(bundle []byte, bitPos int) uint64 {
	return bitpack.ExtractBits(bundle, bitPos, 41)
}

// ia64WriteInstr writes back the low 41 bits of instr at bitPos,
// preserving every other bit of the bundle.
func ia64WriteInstr(bundle []byte, bitPos int, instr uint64) {
	bitpack.InsertBits(bundle, bitPos, 41, instr)
}
