// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package file

import "code.hybscloud.com/task"

// Platform is the host boundary for file effects. Each method opens the
// target at most once, performs one action, and releases every handle
// before returning, on success and failure alike.
//
// Errors may be raw OS errors or bare ReadErr/WriteErr tags; the facade
// classifies them with [ClassifyRead] and [ClassifyWrite].
type Platform interface {
	FileReadBytes(path []byte) ([]byte, error)
	FileWriteBytes(path []byte, b []byte) error
	FileWriteUtf8(path []byte, s string) error
	FileDelete(path []byte) error
}

// File effect operations. Each carries its own interpretation through
// DispatchFile, so NewHost needs no knowledge of the concrete set.

// ReadBytesOp reads the whole content of Path.
type ReadBytesOp struct {
	task.Phantom[[]byte, error]
	Path Path
}

// DispatchFile performs the read on p.
func (o ReadBytesOp) DispatchFile(p Platform) task.Outcome {
	b, err := p.FileReadBytes(o.Path.Bytes())
	if err != nil {
		return task.Reject(err)
	}
	if b == nil {
		b = []byte{}
	}
	return task.Resolve(b)
}

// WriteBytesOp replaces the content of Path with Bytes.
type WriteBytesOp struct {
	task.Phantom[struct{}, error]
	Path  Path
	Bytes []byte
}

// DispatchFile performs the write on p.
func (o WriteBytesOp) DispatchFile(p Platform) task.Outcome {
	return settle(p.FileWriteBytes(o.Path.Bytes(), o.Bytes))
}

// WriteUtf8Op replaces the content of Path with Text.
type WriteUtf8Op struct {
	task.Phantom[struct{}, error]
	Path Path
	Text string
}

// DispatchFile performs the write on p.
func (o WriteUtf8Op) DispatchFile(p Platform) task.Outcome {
	return settle(p.FileWriteUtf8(o.Path.Bytes(), o.Text))
}

// DeleteOp removes Path.
type DeleteOp struct {
	task.Phantom[struct{}, error]
	Path Path
}

// DispatchFile performs the delete on p.
func (o DeleteOp) DispatchFile(p Platform) task.Outcome {
	return settle(p.FileDelete(o.Path.Bytes()))
}

func settle(err error) task.Outcome {
	if err != nil {
		return task.Reject(err)
	}
	return task.Resolve(struct{}{})
}

// dispatchFile routes operations that implement DispatchFile.
func dispatchFile(op task.Operation, p Platform) (task.Outcome, bool) {
	if fop, ok := op.(interface {
		DispatchFile(p Platform) task.Outcome
	}); ok {
		return fop.DispatchFile(p), true
	}
	return task.Outcome{}, false
}

// NewHost returns a synchronous host that performs file operations on p.
// Wrap it with [task.Async] to perform them off the calling goroutine.
// Operations other than file effects panic as unhandled.
func NewHost(p Platform) task.HostFunc {
	return task.Dispatch("file.Host", p, dispatchFile)
}
