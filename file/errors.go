// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package file

// ReadErr is the closed set of failures a read can report.
// The zero value is ReadUnrecognized.
type ReadErr uint8

// ReadErr values. The shared kinds have the same numeric value as their
// WriteErr counterparts.
const (
	ReadUnrecognized ReadErr = iota
	ReadNotFound
	ReadInterrupted
	ReadInvalidFilename
	ReadPermissionDenied
	ReadTooManySymlinks
	ReadTooManyHardlinks
	ReadTimedOut
	ReadStaleNetworkFileHandle
	ReadOutOfMemory
	ReadUnsupported
)

// WriteErr is the closed set of failures a write or delete can report.
// The zero value is WriteUnrecognized.
type WriteErr uint8

// WriteErr values.
const (
	WriteUnrecognized WriteErr = iota
	WriteNotFound
	WriteInterrupted
	WriteInvalidFilename
	WritePermissionDenied
	WriteTooManySymlinks
	WriteTooManyHardlinks
	WriteTimedOut
	WriteStaleNetworkFileHandle
	WriteOutOfMemory
	WriteUnsupported
	WriteReadOnlyFilesystem
	WriteAlreadyExists
	WriteWasADirectory
	WriteZero
	WriteStorageFull
	WriteFilesystemQuotaExceeded
	WriteFileTooLarge
	WriteResourceBusy
	WriteExecutableFileBusy
)

const unrecognized = "Unrecognized"

var tagNames = [...]string{
	WriteUnrecognized:            unrecognized,
	WriteNotFound:                "NotFound",
	WriteInterrupted:             "Interrupted",
	WriteInvalidFilename:         "InvalidFilename",
	WritePermissionDenied:        "PermissionDenied",
	WriteTooManySymlinks:         "TooManySymlinks",
	WriteTooManyHardlinks:        "TooManyHardlinks",
	WriteTimedOut:                "TimedOut",
	WriteStaleNetworkFileHandle:  "StaleNetworkFileHandle",
	WriteOutOfMemory:             "OutOfMemory",
	WriteUnsupported:             "Unsupported",
	WriteReadOnlyFilesystem:      "ReadOnlyFilesystem",
	WriteAlreadyExists:           "AlreadyExists",
	WriteWasADirectory:           "WasADirectory",
	WriteZero:                    "WriteZero",
	WriteStorageFull:             "StorageFull",
	WriteFilesystemQuotaExceeded: "FilesystemQuotaExceeded",
	WriteFileTooLarge:            "FileTooLarge",
	WriteResourceBusy:            "ResourceBusy",
	WriteExecutableFileBusy:      "ExecutableFileBusy",
}

// ReadErrToString returns the display name of e.
// Any value outside the closed set yields "Unrecognized".
func ReadErrToString(e ReadErr) string {
	if e > ReadUnsupported {
		return unrecognized
	}
	return tagNames[e]
}

// WriteErrToString returns the display name of e.
// Any value outside the closed set yields "Unrecognized".
func WriteErrToString(e WriteErr) string {
	if int(e) >= len(tagNames) {
		return unrecognized
	}
	return tagNames[e]
}

func (e ReadErr) String() string  { return ReadErrToString(e) }
func (e WriteErr) String() string { return WriteErrToString(e) }

// Error lets a host report a classified failure directly.
func (e ReadErr) Error() string  { return ReadErrToString(e) }
func (e WriteErr) Error() string { return WriteErrToString(e) }

// ParseReadErr maps a host tag name to a ReadErr.
// Unknown names, including write-only kinds, yield ReadUnrecognized.
func ParseReadErr(tag string) ReadErr {
	return ReadErrOf(ParseWriteErr(tag))
}

// ParseWriteErr maps a host tag name to a WriteErr.
// Unknown names yield WriteUnrecognized.
func ParseWriteErr(tag string) WriteErr {
	for i, name := range tagNames {
		if name == tag {
			return WriteErr(i)
		}
	}
	return WriteUnrecognized
}

// ReadErrOf narrows a WriteErr to the read taxonomy.
// Write-only kinds yield ReadUnrecognized.
func ReadErrOf(e WriteErr) ReadErr {
	if e > WriteUnsupported {
		return ReadUnrecognized
	}
	return ReadErr(e)
}

// WriteErrOf widens a ReadErr to the write taxonomy.
func WriteErrOf(e ReadErr) WriteErr {
	if e > ReadUnsupported {
		return WriteUnrecognized
	}
	return WriteErr(e)
}
