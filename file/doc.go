// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package file provides file I/O as [task.Task] effects with a closed,
// classified error taxonomy.
//
// Every operation opens the target at most once, performs one action, and
// releases the handle before resuming. Nothing touches the file system
// until the Task is run against a host built with [NewHost].
//
// # Operations
//
//   - [ReadBytes], [ReadUtf8]: read whole files
//   - [WriteBytes], [WriteUtf8]: replace whole files, creating them if absent
//   - [Delete]: remove a file
//   - [Read], [Write]: decode and encode values with a [Scheme]
//     ([JSON], [TOML], [YAML], [Raw])
//
// # Errors
//
// Read failures are [ReadErr] values, write and delete failures are
// [WriteErr] values. Both are closed enumerations whose zero value is the
// Unrecognized catch-all. Raw host errors are classified by [ClassifyRead]
// and [ClassifyWrite] and attributed to their path in [ReadError] and
// [WriteError], which keep the raw error as Cause.
//
// Data-format failures are kept apart from I/O failures: [ReadUtf8] fails
// with [Utf8Error], [Read] with [DecodeError], and [Write] with
// [EncodeError], each through a sealed union type.
//
// Tag names cross host boundaries as strings:
//
//	file.ParseReadErr("NotFound")            // ReadNotFound
//	file.ReadErrToString(file.ReadNotFound)  // "NotFound"
//	file.ParseWriteErr("Bogus")              // WriteUnrecognized
//
// # Example
//
// Reads and writes report different error types, so sequencing them
// goes through [task.MapErr]:
//
//	fsys := osfs.Default()
//	p := file.FromString("greeting.txt")
//	write := task.MapErr(file.WriteUtf8("hello", p), func(e *file.WriteError) error { return e })
//	read := task.MapErr(file.ReadUtf8(p), func(e file.ReadUtf8Failure) error { return e })
//	r := task.Run(task.Then(write, read), file.NewHost(fsys))
package file
