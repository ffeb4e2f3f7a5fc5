package jvdata

import "fmt"

// DecodeError reports a field whose bytes cannot be interpreted under its
// declared kind (non-numeric garbage in a numeric field). Blank or zero-fill
// content is not an error; see Decode.
type DecodeError struct {
	Field string
	Kind  Kind
	Value string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jvdata: field %s: cannot decode %q as %s", e.Field, e.Value, e.Kind)
}

// RecordLengthError reports a buffer whose length does not match the record
// type's declared fixed length. The record is rejected whole; it is never
// truncated or padded.
type RecordLengthError struct {
	Tag  string
	Want int
	Got  int
}

func (e *RecordLengthError) Error() string {
	return fmt.Sprintf("jvdata: %s record is %d bytes, want %d", e.Tag, e.Got, e.Want)
}

// UnknownRecordTypeError reports a tag with no registered layout. This is a
// classification failure, not a parse failure: the buffer was never opened.
type UnknownRecordTypeError struct {
	Tag string
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("jvdata: unknown record type %q", e.Tag)
}
