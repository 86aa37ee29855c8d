// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyFinalised             = StateError("proposal already finalised")
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ConfigurationFileNotFound    = NotFoundError("configuration file not found")
	DatabaseIsNotSet             = ProcessError("database handler is not set")
	DuplicateAccount             = InvalidError("same account referenced more than once")
	DuplicateInstruction         = ExistsError("instruction already executed")
	IllegalOwner                 = AuthorisationError("signer is not the owner")
	InsufficientFunds            = ProcessError("insufficient funds")
	InsufficientVotingPower      = ProcessError("insufficient voting power")
	InvalidAccountData           = InvalidError("invalid account data")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidArgument              = InvalidError("invalid argument")
	InvalidBoolean               = RecordError("invalid boolean value")
	InvalidCategory              = InvalidError("invalid proposal category")
	InvalidCount                 = InvalidError("invalid count")
	InvalidDuration              = InvalidError("invalid duration")
	InvalidEnumeration           = RecordError("enumeration value out of range")
	InvalidIdentity              = InvalidError("invalid identity")
	InvalidInstruction           = InvalidError("invalid instruction")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidLoanAmount            = InvalidError("invalid loan amount")
	InvalidLoanStatus            = StateError("invalid loan status")
	InvalidPercentage            = InvalidError("percentage exceeds 100")
	InvalidPoolStatus            = StateError("invalid pool status")
	InvalidRecordSize            = RecordError("record size does not match its type")
	InvalidSignature             = AuthorisationError("invalid signature")
	InvalidTimestamp             = InvalidError("invalid timestamp")
	InvalidUTF8                  = RecordError("string is not valid UTF-8")
	InvalidVotingPeriod          = InvalidError("invalid voting period")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	ListLengthOutOfRange         = RecordError("list length out of range")
	ListTooLong                  = LengthError("list too long")
	LoanNotOverdue               = StateError("loan is not overdue")
	MintMismatch                 = InvalidError("token mint mismatch")
	MintNotFound                 = NotFoundError("mint not found")
	MissingParameters            = InvalidError("missing parameters")
	MissingSignature             = AuthorisationError("missing required signature")
	MissingTitle                 = InvalidError("missing title")
	NotInitialised               = NotFoundError("not initialised")
	NotInVotingPeriod            = StateError("not in voting period")
	NotWritable                  = AuthorisationError("account is not writable")
	Overflow                     = ArithmeticError("arithmetic overflow")
	PoolNotActive                = StateError("pool is not active")
	ProposalNotActive            = StateError("proposal is not active")
	ProposalNotPassed            = StateError("proposal has not passed")
	QuorumNotMet                 = StateError("quorum not met")
	RateLimiting                 = InvalidError("rate limiting")
	RecordNotFound               = NotFoundError("record not found")
	StringLengthOutOfRange       = RecordError("string length out of range")
	StringTooLong                = LengthError("string too long")
	TokenAccountNotFound         = NotFoundError("token account not found")
	TransactionInUse             = ProcessError("transaction already in use")
	TruncatedRecord              = RecordError("truncated record")
	UninitialisedAccount         = NotFoundError("uninitialised account")
	UnknownRecordType            = RecordError("unknown record type")
	VotingNotEnded               = StateError("voting period has not ended")
	VotingStillActive            = StateError("voting still active")
	WrongAccount                 = InvalidError("account does not match record")
	WrongRecordType              = RecordError("wrong record type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string    { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool    { _, ok := e.(ArithmeticError); return ok }
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
