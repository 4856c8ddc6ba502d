package checkpoint

import "errors"

var (
	// ErrRecordFormat indicates a file that does not start with the record magic.
	ErrRecordFormat = errors.New("checkpoint: not a record file")

	// ErrRecordVersion indicates a record written by a newer schema.
	ErrRecordVersion = errors.New("checkpoint: unsupported record version")

	// ErrRecordKind indicates a record of a different kind than requested.
	ErrRecordKind = errors.New("checkpoint: unexpected record kind")

	// ErrMissingRecord indicates a member file referenced by metadata is absent.
	ErrMissingRecord = errors.New("checkpoint: referenced record missing")

	// ErrNoMetadata indicates a restore from a directory without metadata.
	ErrNoMetadata = errors.New("checkpoint: no ensemble metadata")
)
