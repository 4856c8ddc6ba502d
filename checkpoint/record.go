package checkpoint

import (
	"encoding/binary"
	"encoding/gob"
	"io"
	"time"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// SchemaVersion is the record layout written by this package.
const SchemaVersion uint16 = 1

const (
	magic      = "SFAB"
	headerSize = len(magic) + 2 + 1
)

// Kind tags the record type stored in a file.
type Kind uint8

const (
	// KindEnsemble marks ensemble metadata.
	KindEnsemble Kind = 1
	// KindIndividual marks one per-configuration member.
	KindIndividual Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindEnsemble:
		return "ensemble"
	case KindIndividual:
		return "individual"
	default:
		return "unknown"
	}
}

// EnsembleRecord is the ensemble metadata: scalars and per-channel member
// counts, never the members themselves.
type EnsembleRecord struct {
	Dataset         string
	Seed            int64
	Strategy        string
	TargetSize      int
	MaxEnsembleSize int
	TimeLimit       time.Duration
	Multivariate    bool
	NumClasses      int

	// Counts[c] members of channel c are persisted as individual files.
	Counts []int
	// NextChannel receives the next drawn configuration.
	NextChannel int
	// RNG is the binary state of the draw generator.
	RNG []byte
	// Consumed is training time spent so far, checkpoint overhead excluded.
	Consumed time.Duration
}

// IndividualRecord is one per-configuration member.
type IndividualRecord struct {
	WordLength    int
	AlphabetSize  int
	WindowLength  int
	Normalize     bool
	RawWordLength int
	Accuracy      float64
	NumClasses    int

	Breakpoints [][]float64
	Labels      []int
	// Bags is empty when the member delegates to a base classifier and was released.
	Bags []BagRecord
	// RawWords is empty once the member was released.
	RawWords [][]uint32
	// Vocabulary and Base are set for base-classifier members.
	Vocabulary []uint32
	Base       []byte
}

// BagRecord is one word histogram as parallel slices.
type BagRecord struct {
	Class  int
	Words  []uint32
	Counts []int
}

// Encode writes header and gob payload of v to w.
func Encode(w io.Writer, kind Kind, v any) error {
	var hdr [headerSize]byte
	copy(hdr[:], magic)
	binary.BigEndian.PutUint16(hdr[len(magic):], SchemaVersion)
	hdr[headerSize-1] = byte(kind)
	if _, err := w.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "checkpoint: write header")
	}

	sw := snappy.NewBufferedWriter(w)
	if err := gob.NewEncoder(sw).Encode(v); err != nil {
		_ = sw.Close()
		return errors.Wrapf(err, "checkpoint: encode %s record", kind)
	}
	return errors.Wrap(sw.Close(), "checkpoint: flush")
}

// Decode reads a record of the wanted kind from r into v.
func Decode(r io.Reader, want Kind, v any) error {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return errors.Wrapf(ErrRecordFormat, "short header: %v", err)
	}
	if string(hdr[:len(magic)]) != magic {
		return ErrRecordFormat
	}
	if ver := binary.BigEndian.Uint16(hdr[len(magic):]); ver > SchemaVersion {
		return errors.Wrapf(ErrRecordVersion, "version %d", ver)
	}
	if got := Kind(hdr[headerSize-1]); got != want {
		return errors.Wrapf(ErrRecordKind, "got %s, want %s", got, want)
	}

	return errors.Wrapf(gob.NewDecoder(snappy.NewReader(r)).Decode(v), "checkpoint: decode %s record", want)
}
