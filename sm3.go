package sm3

import (
	"encoding/binary"

	"github.com/zeebo/sm3/internal/consts"
	"github.com/zeebo/sm3/internal/utils"
)

//
// hasher contains state for an sm3 hash
//

type hasher struct {
	len   uint64 // total bytes written
	state [8]uint32
	bufn  int // always < consts.BlockLen between calls
	buf   [consts.BlockLen]byte
}

func newHasher() hasher {
	return hasher{state: consts.IV}
}

func (a *hasher) reset() {
	*a = newHasher()
}

func (a *hasher) update(buf []byte) {
	if len(buf) == 0 {
		return
	}
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]

		if a.bufn < consts.BlockLen {
			return
		}

		compressBytes(&a.state, &a.buf)
		a.bufn = 0
	}

	// full blocks are compressed straight out of the caller's slice
	for len(buf) >= consts.BlockLen {
		compressBytes(&a.state, (*[consts.BlockLen]byte)(buf))
		buf = buf[consts.BlockLen:]
	}

	a.bufn = copy(a.buf[:], buf)
}

// finalize has a value receiver: padding and the trailing compressions run
// on a copy, so the hasher can keep accepting writes afterwards.
func (a hasher) finalize(out *[consts.Size]byte) {
	var block [consts.BlockLen]byte
	copy(block[:], a.buf[:a.bufn])
	block[a.bufn] = 0x80

	if a.bufn >= consts.LenOffset {
		compressBytes(&a.state, &block)
		block = [consts.BlockLen]byte{}
	}

	binary.BigEndian.PutUint64(block[consts.LenOffset:], a.len<<3)
	compressBytes(&a.state, &block)

	utils.WordsToBytes(&a.state, out)
}
