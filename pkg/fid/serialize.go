package fid

import (
	"encoding/binary"
	"fmt"

	"github.com/gtank/blake2s"

	"github.com/oisee/fid/pkg/bitpack"
)

// checksumSize is the length, in bytes, of the trailing integrity digest
// appended to every serialized snapshot.
const checksumSize = 32

// MarshalBinary serializes the BitVector's entire state as an opaque
// byte stream: little-endian scalar headers followed by the raw blocks
// of each packed directory/payload stream, followed by a BLAKE2s digest
// of everything before it for corruption detection on load.
func (bv *BitVector) MarshalBinary() ([]byte, error) {
	var buf []byte
	buf = appendUint64(buf, bv.n)
	buf = appendUint64(buf, bv.ones)
	buf = appendUint64(buf, bv.numSmall)
	buf = appendUint64(buf, bv.codesLen)
	buf = appendUint64(buf, bv.stagingWord)
	buf = append(buf, bv.stagingLen)

	buf = appendUint64Slice(buf, bv.popLarge)
	buf = appendUint64Slice(buf, bv.ptrLarge)
	buf = appendPackedArray(buf, &bv.popSmall)
	buf = appendPackedArray(buf, &bv.ptrSmall)
	buf = appendPackedArray(buf, &bv.classes)
	buf = appendPackedArray(buf, &bv.codes)

	h, err := blake2s.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		return nil, fmt.Errorf("fid: marshal: %w", err)
	}
	if _, err := h.Write(buf); err != nil {
		return nil, fmt.Errorf("fid: marshal: %w", err)
	}
	return append(buf, h.Sum(nil)...), nil
}

// UnmarshalBinary restores state previously produced by MarshalBinary,
// verifying the trailing checksum before touching any header field.
func (bv *BitVector) UnmarshalBinary(data []byte) error {
	if len(data) < checksumSize {
		return fmt.Errorf("fid: unmarshal: truncated snapshot (%d bytes)", len(data))
	}
	payload, sum := data[:len(data)-checksumSize], data[len(data)-checksumSize:]

	h, err := blake2s.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	if _, err := h.Write(payload); err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	want := h.Sum(nil)
	for i := range want {
		if want[i] != sum[i] {
			return fmt.Errorf("fid: unmarshal: checksum mismatch")
		}
	}

	r := &byteReader{buf: payload}
	n, err := r.uint64()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	ones, err := r.uint64()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	numSmall, err := r.uint64()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	codesLen, err := r.uint64()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	stagingWord, err := r.uint64()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	stagingLen, err := r.byte()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}

	popLarge, err := r.uint64Slice()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	ptrLarge, err := r.uint64Slice()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	popSmall, err := r.packedArray()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	ptrSmall, err := r.packedArray()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	classes, err := r.packedArray()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}
	codes, err := r.packedArray()
	if err != nil {
		return fmt.Errorf("fid: unmarshal: %w", err)
	}

	bv.n = n
	bv.ones = ones
	bv.numSmall = numSmall
	bv.codesLen = codesLen
	bv.stagingWord = stagingWord
	bv.stagingLen = stagingLen
	bv.popLarge = popLarge
	bv.ptrLarge = ptrLarge
	bv.popSmall = *popSmall
	bv.ptrSmall = *ptrSmall
	bv.classes = *classes
	bv.codes = *codes
	return nil
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendUint64Slice(buf []byte, s []uint64) []byte {
	buf = appendUint64(buf, uint64(len(s)))
	for _, v := range s {
		buf = appendUint64(buf, v)
	}
	return buf
}

func appendPackedArray(buf []byte, a *bitpack.Array) []byte {
	buf = appendUint64(buf, a.SizeBits())
	return appendUint64Slice(buf, a.Blocks())
}

type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) uint64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, fmt.Errorf("unexpected end of snapshot")
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *byteReader) byte() (uint8, error) {
	if r.pos+1 > len(r.buf) {
		return 0, fmt.Errorf("unexpected end of snapshot")
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *byteReader) uint64Slice() ([]uint64, error) {
	n, err := r.uint64()
	if err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		v, err := r.uint64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *byteReader) packedArray() (*bitpack.Array, error) {
	sizeBits, err := r.uint64()
	if err != nil {
		return nil, err
	}
	blocks, err := r.uint64Slice()
	if err != nil {
		return nil, err
	}
	a := bitpack.FromBlocks(blocks)
	a.Resize(sizeBits)
	return a, nil
}
