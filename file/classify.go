// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package file

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// ClassifyRead maps a raw host error to the read taxonomy.
//
// Resolution order: a tag the host already attached (ReadErr or WriteErr
// anywhere in the chain), then the OS error number, then the io/fs
// sentinels. Anything else is ReadUnrecognized; ClassifyRead never fails.
func ClassifyRead(err error) ReadErr {
	var tag ReadErr
	if errors.As(err, &tag) {
		return tag
	}
	return ReadErrOf(ClassifyWrite(err))
}

// ClassifyWrite maps a raw host error to the write taxonomy.
// It follows the same resolution order as [ClassifyRead].
func ClassifyWrite(err error) WriteErr {
	if err == nil {
		return WriteUnrecognized
	}
	var wtag WriteErr
	if errors.As(err, &wtag) {
		return wtag
	}
	var rtag ReadErr
	if errors.As(err, &rtag) {
		return WriteErrOf(rtag)
	}
	if kind, ok := classifyErrno(err); ok {
		return kind
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return WriteNotFound
	case errors.Is(err, fs.ErrPermission):
		return WritePermissionDenied
	case errors.Is(err, fs.ErrExist):
		return WriteAlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return WriteInvalidFilename
	case errors.Is(err, os.ErrDeadlineExceeded):
		return WriteTimedOut
	case errors.Is(err, io.ErrShortWrite):
		return WriteZero
	}
	return WriteUnrecognized
}
