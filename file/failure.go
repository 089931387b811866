// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package file

import (
	"fmt"
)

// ReadError is a read failure attributed to the path it happened on.
type ReadError struct {
	Path  Path
	Err   ReadErr
	Cause error // raw host error, nil when the host reported a bare tag
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return describe("read", e.Path, e.Err.String(), e.Cause)
}

// Unwrap returns the tag and the raw host error.
func (e *ReadError) Unwrap() []error {
	return unwrapPair(e.Err, e.Cause)
}

// WriteError is a write or delete failure attributed to its path.
type WriteError struct {
	Path  Path
	Err   WriteErr
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return describe("write", e.Path, e.Err.String(), e.Cause)
}

// Unwrap returns the tag and the raw host error.
func (e *WriteError) Unwrap() []error {
	return unwrapPair(e.Err, e.Cause)
}

// Utf8Error reports that a file was read but its content is not valid
// UTF-8. It is a data-format failure, not a ReadErr.
type Utf8Error struct {
	Path Path
	Err  error
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("read %s: invalid utf-8", e.Path)
}

func (e *Utf8Error) Unwrap() error { return e.Err }

// EncodeError reports that a value could not be encoded before writing.
type EncodeError struct {
	Path Path
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports that file content could not be decoded.
type DecodeError struct {
	Path Path
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadUtf8Failure is the closed union returned by [ReadUtf8]:
// *ReadError or *Utf8Error.
type ReadUtf8Failure interface {
	error
	readUtf8Failure()
}

// ReadFailure is the closed union returned by [Read]:
// *ReadError or *DecodeError.
type ReadFailure interface {
	error
	readFailure()
}

// WriteFailure is the closed union returned by [Write]:
// *WriteError or *EncodeError.
type WriteFailure interface {
	error
	writeFailure()
}

func (*ReadError) readUtf8Failure() {}
func (*Utf8Error) readUtf8Failure() {}
func (*ReadError) readFailure()     {}
func (*DecodeError) readFailure()   {}
func (*WriteError) writeFailure()   {}
func (*EncodeError) writeFailure()  {}

func describe(op string, p Path, tag string, cause error) string {
	if cause == nil {
		return fmt.Sprintf("%s %s: %s", op, p, tag)
	}
	return fmt.Sprintf("%s %s: %s: %v", op, p, tag, cause)
}

func unwrapPair(tag, cause error) []error {
	if cause == nil {
		return []error{tag}
	}
	return []error{tag, cause}
}

// newReadError classifies a raw host error and attributes it to p.
func newReadError(p Path, err error) *ReadError {
	e := &ReadError{Path: p, Err: ClassifyRead(err)}
	if _, bare := err.(ReadErr); !bare {
		e.Cause = err
	}
	return e
}

// newWriteError classifies a raw host error and attributes it to p.
func newWriteError(p Path, err error) *WriteError {
	e := &WriteError{Path: p, Err: ClassifyWrite(err)}
	if _, bare := err.(WriteErr); !bare {
		e.Cause = err
	}
	return e
}
