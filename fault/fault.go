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
type OverflowError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyExists              = ExistsError("token already exists")
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrBalanceOverflow            = OverflowError("balance overflow")
	ErrBalanceUnderflow           = OverflowError("balance underflow")
	ErrCertificateFileExists      = ExistsError("certificate file already exists")
	ErrIdCounterExhausted         = OverflowError("token id counter exhausted")
	ErrIdenticalParents           = InvalidError("parents must be different tokens")
	ErrInvalidAccount             = InvalidError("invalid account")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidDatabaseEngine      = InvalidError("invalid database engine")
	ErrInvalidEventPack           = InvalidError("invalid event pack")
	ErrInvalidIpAddress           = InvalidError("invalid IP address")
	ErrInvalidNodePack            = InvalidError("invalid ownership node pack")
	ErrInvalidParent              = InvalidError("invalid parent token")
	ErrInvalidSeed                = InvalidError("invalid selector seed")
	ErrInvalidSignature           = PermissionError("invalid signature")
	ErrInvalidTimestamp           = PermissionError("request timestamp outside allowed window")
	ErrKeyFileExists              = ExistsError("key file already exists")
	ErrMissingParameters          = InvalidError("missing parameters")
	ErrNonceOverflow              = OverflowError("nonce overflow")
	ErrNotAuthorised              = PermissionError("caller is not authorised for this token")
	ErrNotFound                   = NotFoundError("token not found")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrNotOwner                   = PermissionError("account is not the token owner")
	ErrOwnershipIndexCorrupt      = ProcessError("ownership index is corrupt")
	ErrPayloadTooLarge            = InvalidError("payload too large")
	ErrRateLimiting               = ProcessError("rate limiting")
	ErrSelfApproval               = InvalidError("cannot approve self")
	ErrSupplyOverflow             = OverflowError("total supply overflow")
	ErrSupplyUnderflow            = OverflowError("total supply underflow")
	ErrTokenNotIndexed            = NotFoundError("token is not in owner index")
	ErrTransactionAlreadyInUse    = ProcessError("transaction already in use")
	ErrTransactionNotInUse        = ProcessError("transaction not in use")
	ErrUnsupportedDatabaseVersion = InvalidError("unsupported database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e OverflowError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool   { _, ok := e.(OverflowError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
