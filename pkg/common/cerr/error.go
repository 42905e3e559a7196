// Copyright 2025 - 2026 CascadeDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cerr

import (
	"context"
	"fmt"
)

const DefaultSqlState = "HY000"

const (
	// 0 - 99 is OK. They do not carry a message and never reach a client.
	Ok    uint16 = 0
	OkMax uint16 = 99

	// Group 1: internal errors
	ErrStart        uint16 = 20100
	ErrInternal     uint16 = 20101
	ErrNYI          uint16 = 20102
	ErrNotSupported uint16 = 20103

	// Group 2: invalid input
	ErrInvalidArg   uint16 = 20200
	ErrInvalidInput uint16 = 20201
	ErrBadConfig    uint16 = 20202

	// ErrEnd, the max value of an error code
	ErrEnd uint16 = 65535
)

type errorMsgItem struct {
	sqlStates        []string
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]errorMsgItem{
	// Group 1: internal errors
	ErrStart:        {[]string{DefaultSqlState}, "internal error: error code start"},
	ErrInternal:     {[]string{DefaultSqlState}, "internal error: %s"},
	ErrNYI:          {[]string{DefaultSqlState}, "%s is not yet implemented"},
	ErrNotSupported: {[]string{DefaultSqlState}, "not supported: %s"},

	// Group 2: invalid input
	ErrInvalidArg:   {[]string{DefaultSqlState}, "invalid argument %s, bad value %s"},
	ErrInvalidInput: {[]string{DefaultSqlState}, "invalid input: %s"},
	ErrBadConfig:    {[]string{DefaultSqlState}, "invalid configuration: %s"},

	// Group End: max value of the error code
	ErrEnd: {[]string{DefaultSqlState}, "internal error: end of error code"},
}

// Context returns the context used by the NoCtx constructors.
func Context() context.Context {
	return context.Background()
}

func newError(ctx context.Context, code uint16, args ...any) *Error {
	_ = ctx
	var err *Error
	item, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("not exist error code: %d", code))
	}
	if len(args) == 0 {
		err = &Error{
			code:     code,
			message:  item.errorMsgOrFormat,
			sqlState: item.sqlStates[0],
		}
	} else {
		err = &Error{
			code:     code,
			message:  fmt.Sprintf(item.errorMsgOrFormat, args...),
			sqlState: item.sqlStates[0],
		}
	}
	return err
}

type Error struct {
	code     uint16
	message  string
	sqlState string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) SqlState() string {
	return e.sqlState
}

func (e *Error) Succeeded() bool {
	return e.code <= OkMax
}

func IsErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}
	ce, ok := e.(*Error)
	if !ok {
		// not an engine error
		return false
	}
	return ce.code == rc
}

func NewInternalError(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInternal, fmt.Sprintf(msg, args...))
}

func NewInternalErrorNoCtx(msg string, args ...any) *Error {
	return NewInternalError(Context(), msg, args...)
}

func NewNYI(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrNYI, fmt.Sprintf(msg, args...))
}

func NewNYINoCtx(msg string, args ...any) *Error {
	return NewNYI(Context(), msg, args...)
}

func NewNotSupported(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrNotSupported, fmt.Sprintf(msg, args...))
}

func NewNotSupportedNoCtx(msg string, args ...any) *Error {
	return NewNotSupported(Context(), msg, args...)
}

func NewInvalidArg(ctx context.Context, arg string, val any) *Error {
	return newError(ctx, ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewInvalidArgNoCtx(arg string, val any) *Error {
	return NewInvalidArg(Context(), arg, val)
}

func NewInvalidInput(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInvalidInput, fmt.Sprintf(msg, args...))
}

func NewInvalidInputNoCtx(msg string, args ...any) *Error {
	return NewInvalidInput(Context(), msg, args...)
}

func NewBadConfig(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrBadConfig, fmt.Sprintf(msg, args...))
}

func NewBadConfigNoCtx(msg string, args ...any) *Error {
	return NewBadConfig(Context(), msg, args...)
}
