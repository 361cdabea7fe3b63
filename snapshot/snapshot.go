// Package snapshot persists generated prime runs.
//
// A snapshot is a self-describing binary file: a fixed header carries the
// magic, format version, codec name, bound, and prime count; the payload is
// the delta-encoded prime sequence (uvarint gaps), compressed by the named
// codec. Delta encoding keeps gaps small — the average gap below n is about
// ln(n) — so the varints stay short and compress well.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// MagicNumber identifies sievego snapshot files (ASCII: "SIV0").
	MagicNumber = 0x53495630
	// Version is the current snapshot format version.
	Version = 1

	// maxCodecName bounds the codec-name field so a corrupt header cannot
	// drive a huge allocation.
	maxCodecName = 32
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	ErrUnknownCodec   = errors.New("unknown snapshot codec")
	ErrCorrupt        = errors.New("corrupt snapshot")
)

// Snapshot is a decoded prime run.
type Snapshot struct {
	// Bound is the exclusive upper bound the run was generated for.
	Bound int
	// Primes is the strictly increasing prime sequence below Bound.
	Primes []int
}

type options struct {
	codec Codec
}

// Option configures snapshot writing.
type Option func(*options)

// WithCodec selects the payload codec. If nil is passed, Default is used.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c == nil {
			c = Default
		}
		o.codec = c
	}
}

// Write persists primes (all primes below bound, strictly increasing) to w.
func Write(w io.Writer, bound int, primes []int, optFns ...Option) error {
	o := options{codec: Default}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	bw := bufio.NewWriter(w)

	if err := writeHeader(bw, o.codec.Name(), bound, len(primes)); err != nil {
		return err
	}

	cw, err := o.codec.NewWriter(bw)
	if err != nil {
		return fmt.Errorf("creating %s writer: %w", o.codec.Name(), err)
	}

	if err := writePayload(cw, primes); err != nil {
		_ = cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("flushing %s payload: %w", o.codec.Name(), err)
	}

	return bw.Flush()
}

// Read decodes a snapshot from r, validating the header and the ordering of
// the decoded sequence.
func Read(r io.Reader) (*Snapshot, error) {
	br := bufio.NewReader(r)

	codecName, bound, count, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	codec, ok := ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	cr, err := codec.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("creating %s reader: %w", codecName, err)
	}
	defer cr.Close()

	primes, err := readPayload(bufio.NewReader(cr), bound, count)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Bound: bound, Primes: primes}, nil
}

func writeHeader(w io.Writer, codecName string, bound, count int) error {
	var fixed [12]byte
	binary.BigEndian.PutUint32(fixed[0:4], MagicNumber)
	binary.BigEndian.PutUint32(fixed[4:8], Version)
	binary.BigEndian.PutUint32(fixed[8:12], uint32(len(codecName)))
	if _, err := w.Write(fixed[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, codecName); err != nil {
		return err
	}

	var buf []byte
	buf = binary.AppendUvarint(buf, uint64(bound))
	buf = binary.AppendUvarint(buf, uint64(count))
	_, err := w.Write(buf)
	return err
}

func readHeader(br *bufio.Reader) (codecName string, bound, count int, err error) {
	var fixed [12]byte
	if _, err = io.ReadFull(br, fixed[:]); err != nil {
		return "", 0, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if binary.BigEndian.Uint32(fixed[0:4]) != MagicNumber {
		return "", 0, 0, ErrInvalidMagic
	}
	if v := binary.BigEndian.Uint32(fixed[4:8]); v != Version {
		return "", 0, 0, fmt.Errorf("%w: %d", ErrInvalidVersion, v)
	}
	nameLen := binary.BigEndian.Uint32(fixed[8:12])
	if nameLen == 0 || nameLen > maxCodecName {
		return "", 0, 0, fmt.Errorf("%w: codec name length %d", ErrCorrupt, nameLen)
	}

	name := make([]byte, nameLen)
	if _, err = io.ReadFull(br, name); err != nil {
		return "", 0, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	boundU, err := binary.ReadUvarint(br)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	countU, err := binary.ReadUvarint(br)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return string(name), int(boundU), int(countU), nil
}

func writePayload(w io.Writer, primes []int) error {
	// Batch varints through a small scratch buffer to keep Write calls off
	// the per-prime hot path.
	scratch := make([]byte, 0, 4096)
	prev := 0
	for i, p := range primes {
		if p <= prev && i > 0 {
			return fmt.Errorf("%w: sequence not strictly increasing at %d", ErrCorrupt, p)
		}
		scratch = binary.AppendUvarint(scratch, uint64(p-prev))
		prev = p
		if len(scratch) >= 4096-binary.MaxVarintLen64 {
			if _, err := w.Write(scratch); err != nil {
				return err
			}
			scratch = scratch[:0]
		}
	}
	if len(scratch) > 0 {
		if _, err := w.Write(scratch); err != nil {
			return err
		}
	}
	return nil
}

func readPayload(br *bufio.Reader, bound, count int) ([]int, error) {
	primes := make([]int, 0, count)
	prev := 0
	for i := 0; i < count; i++ {
		gap, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		p := prev + int(gap)
		if p <= prev || p >= bound {
			return nil, fmt.Errorf("%w: value %d out of order or beyond bound %d", ErrCorrupt, p, bound)
		}
		primes = append(primes, p)
		prev = p
	}
	return primes, nil
}
