// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package file

import (
	"bytes"

	"code.hybscloud.com/task"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ReadBytes reads the whole file at p.
func ReadBytes(p Path) task.Task[[]byte, *ReadError] {
	t := task.Perform[ReadBytesOp, []byte, error](ReadBytesOp{Path: p})
	return task.MapErr(t, func(err error) *ReadError {
		return newReadError(p, err)
	})
}

// ReadUtf8 reads the file at p as UTF-8 text.
// Content that is not valid UTF-8 fails with *Utf8Error, never ReadErr.
func ReadUtf8(p Path) task.Task[string, ReadUtf8Failure] {
	read := task.MapErr(ReadBytes(p), func(e *ReadError) ReadUtf8Failure { return e })
	return task.Await(read, func(b []byte) task.Task[string, ReadUtf8Failure] {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
			return task.Err[string, ReadUtf8Failure](&Utf8Error{Path: p, Err: err})
		}
		return task.Ok[string, ReadUtf8Failure](string(b))
	})
}

// WriteBytes replaces the content of the file at p with b, creating it
// if absent. On success the file contains exactly b. The Task keeps its
// own copy of b.
func WriteBytes(b []byte, p Path) task.Task[struct{}, *WriteError] {
	t := task.Perform[WriteBytesOp, struct{}, error](WriteBytesOp{Path: p, Bytes: bytes.Clone(b)})
	return task.MapErr(t, func(err error) *WriteError {
		return newWriteError(p, err)
	})
}

// WriteUtf8 replaces the content of the file at p with the UTF-8 bytes of s.
func WriteUtf8(s string, p Path) task.Task[struct{}, *WriteError] {
	t := task.Perform[WriteUtf8Op, struct{}, error](WriteUtf8Op{Path: p, Text: s})
	return task.MapErr(t, func(err error) *WriteError {
		return newWriteError(p, err)
	})
}

// Delete removes the file at p. Deletion failures use the write
// taxonomy; a missing file fails with WriteNotFound.
func Delete(p Path) task.Task[struct{}, *WriteError] {
	t := task.Perform[DeleteOp, struct{}, error](DeleteOp{Path: p})
	return task.MapErr(t, func(err error) *WriteError {
		return newWriteError(p, err)
	})
}

// Write encodes v with enc and writes the result to p.
// Encoding happens when the Task runs. An encoding failure is reported as
// *EncodeError and nothing is written.
func Write[T any](v T, p Path, enc Encoder) task.Task[struct{}, WriteFailure] {
	return task.Defer(func() task.Task[struct{}, WriteFailure] {
		b, err := enc.Encode(v)
		if err != nil {
			return task.Err[struct{}, WriteFailure](&EncodeError{Path: p, Err: err})
		}
		return task.MapErr(WriteBytes(b, p), func(e *WriteError) WriteFailure { return e })
	})
}

// Read reads the file at p and decodes it with dec into a fresh T.
func Read[T any](p Path, dec Decoder) task.Task[T, ReadFailure] {
	read := task.MapErr(ReadBytes(p), func(e *ReadError) ReadFailure { return e })
	return task.Await(read, func(b []byte) task.Task[T, ReadFailure] {
		var v T
		if err := dec.Decode(b, &v); err != nil {
			return task.Err[T, ReadFailure](&DecodeError{Path: p, Err: err})
		}
		return task.Ok[T, ReadFailure](v)
	})
}
