// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConsentAlreadyClaimed = ExistsError("consent already claimed")
	ErrConsentNotFound       = NotFoundError("consent not found")
	ErrDatabaseVersion       = ProcessError("incompatible database version")
	ErrGroupFull             = InvalidError("group is full")
	ErrGroupNotFound         = NotFoundError("group not found")
	ErrInvalidCode           = InvalidError("invalid consent code")
	ErrInvalidConfiguration  = InvalidError("invalid configuration")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidFieldName      = InvalidError("invalid field name")
	ErrInvalidGroupName      = InvalidError("invalid group name")
	ErrInvalidIdentifier     = InvalidError("invalid identifier")
	ErrInvalidNIK            = InvalidError("invalid NIK")
	ErrInvalidPoolTag        = InvalidError("invalid pool tag")
	ErrInvalidRelation       = InvalidError("invalid relation")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMemberAlreadyExists   = ExistsError("member already exists")
	ErrMemberNotFound        = NotFoundError("member not found")
	ErrNIKAlreadyBound       = ExistsError("NIK already bound to an owner")
	ErrNotGroupLeader        = PermissionError("not group leader")
	ErrNotGroupMember        = PermissionError("not group member")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrNotPermitted          = PermissionError("not permitted")
	ErrNotSessionOwner       = PermissionError("not session owner")
	ErrOwnerAlreadyBound     = ExistsError("actor already bound to an owner")
	ErrOwnerNotFound         = NotFoundError("owner not found")
	ErrRateLimited           = PermissionError("rate limited")
	ErrRecordAlreadyExists   = ExistsError("record already exists")
	ErrRecordNotExist        = NotFoundError("record does not exist")
	ErrSessionNotFound       = NotFoundError("session not found")
	ErrTransactionInUse      = ProcessError("transaction already in use")
	ErrTransactionNotStarted = ProcessError("transaction not started")
	ErrTruncatedRecord       = ProcessError("truncated record")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
