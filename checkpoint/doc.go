// Package checkpoint persists resumable ensemble training state.
//
// A run owns one directory, named deterministically from dataset name, seed
// and strategy tag (RunName). Inside it:
//
//	individual-<channel>-<position>.rec   one per retained member
//	ensemble.rec                          ensemble metadata (scalars, counts, RNG)
//
// Every file is a versioned record: the 4-byte magic "SFAB", a big-endian
// uint16 schema version, one record-kind byte, then a snappy-framed gob
// stream of an explicit record struct (EnsembleRecord or IndividualRecord).
// Loading a file of the wrong kind fails with ErrRecordKind; files written
// by a newer schema fail with ErrRecordVersion.
//
// Metadata is written to a temporary file and renamed over the previous one,
// so a crash leaves either the old or the new metadata, never a torn one.
// Sweep reconciles the directory with the metadata after a restore.
//
// A Store is not safe for concurrent use, and two runs sharing a directory
// will overwrite each other.
package checkpoint
