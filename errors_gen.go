// This file defines the Kelvin error taxonomy: one concrete struct per leaf
// error kind, grouped under ErrorCategory values and optionally marked with
// retry-relevant ErrorTag values. Layout mirrors the table emitted by
// internal/errgen's type parser (see errgen.Type), but the category strings,
// numeric wire codes, and per-type method bodies below are this driver's own
// and are not read off the wire verbatim from any upstream error catalog.

package gel

import "fmt"

const (
	ShouldRetry     ErrorTag = "retry"
	ShouldReconnect ErrorTag = "reconnect"
)

const (
	InternalServerError	ErrorCategory = "kelvin:error/internal-server-error"
	UnsupportedFeatureError	ErrorCategory = "kelvin:error/unsupported-feature-error"
	ProtocolError	ErrorCategory = "kelvin:error/protocol-error"
	BinaryProtocolError	ErrorCategory = "kelvin:error/binary-protocol-error"
	UnsupportedProtocolVersionError	ErrorCategory = "kelvin:error/unsupported-protocol-version-error"
	TypeSpecNotFoundError	ErrorCategory = "kelvin:error/type-spec-not-found-error"
	UnexpectedMessageError	ErrorCategory = "kelvin:error/unexpected-message-error"
	InputDataError	ErrorCategory = "kelvin:error/input-data-error"
	ParameterTypeMismatchError	ErrorCategory = "kelvin:error/parameter-type-mismatch-error"
	StateMismatchError	ErrorCategory = "kelvin:error/state-mismatch-error"
	ResultCardinalityMismatchError	ErrorCategory = "kelvin:error/result-cardinality-mismatch-error"
	CapabilityError	ErrorCategory = "kelvin:error/capability-error"
	UnsupportedCapabilityError	ErrorCategory = "kelvin:error/unsupported-capability-error"
	DisabledCapabilityError	ErrorCategory = "kelvin:error/disabled-capability-error"
	QueryError	ErrorCategory = "kelvin:error/query-error"
	InvalidSyntaxError	ErrorCategory = "kelvin:error/invalid-syntax-error"
	EdgeQLSyntaxError	ErrorCategory = "kelvin:error/edge-q-l-syntax-error"
	SchemaSyntaxError	ErrorCategory = "kelvin:error/schema-syntax-error"
	GraphQLSyntaxError	ErrorCategory = "kelvin:error/graph-q-l-syntax-error"
	InvalidTypeError	ErrorCategory = "kelvin:error/invalid-type-error"
	InvalidTargetError	ErrorCategory = "kelvin:error/invalid-target-error"
	InvalidLinkTargetError	ErrorCategory = "kelvin:error/invalid-link-target-error"
	InvalidPropertyTargetError	ErrorCategory = "kelvin:error/invalid-property-target-error"
	InvalidReferenceError	ErrorCategory = "kelvin:error/invalid-reference-error"
	UnknownModuleError	ErrorCategory = "kelvin:error/unknown-module-error"
	UnknownLinkError	ErrorCategory = "kelvin:error/unknown-link-error"
	UnknownPropertyError	ErrorCategory = "kelvin:error/unknown-property-error"
	UnknownUserError	ErrorCategory = "kelvin:error/unknown-user-error"
	UnknownDatabaseError	ErrorCategory = "kelvin:error/unknown-database-error"
	UnknownParameterError	ErrorCategory = "kelvin:error/unknown-parameter-error"
	DeprecatedScopingError	ErrorCategory = "kelvin:error/deprecated-scoping-error"
	SchemaError	ErrorCategory = "kelvin:error/schema-error"
	SchemaDefinitionError	ErrorCategory = "kelvin:error/schema-definition-error"
	InvalidDefinitionError	ErrorCategory = "kelvin:error/invalid-definition-error"
	InvalidModuleDefinitionError	ErrorCategory = "kelvin:error/invalid-module-definition-error"
	InvalidLinkDefinitionError	ErrorCategory = "kelvin:error/invalid-link-definition-error"
	InvalidPropertyDefinitionError	ErrorCategory = "kelvin:error/invalid-property-definition-error"
	InvalidUserDefinitionError	ErrorCategory = "kelvin:error/invalid-user-definition-error"
	InvalidDatabaseDefinitionError	ErrorCategory = "kelvin:error/invalid-database-definition-error"
	InvalidOperatorDefinitionError	ErrorCategory = "kelvin:error/invalid-operator-definition-error"
	InvalidAliasDefinitionError	ErrorCategory = "kelvin:error/invalid-alias-definition-error"
	InvalidFunctionDefinitionError	ErrorCategory = "kelvin:error/invalid-function-definition-error"
	InvalidConstraintDefinitionError	ErrorCategory = "kelvin:error/invalid-constraint-definition-error"
	InvalidCastDefinitionError	ErrorCategory = "kelvin:error/invalid-cast-definition-error"
	DuplicateDefinitionError	ErrorCategory = "kelvin:error/duplicate-definition-error"
	DuplicateModuleDefinitionError	ErrorCategory = "kelvin:error/duplicate-module-definition-error"
	DuplicateLinkDefinitionError	ErrorCategory = "kelvin:error/duplicate-link-definition-error"
	DuplicatePropertyDefinitionError	ErrorCategory = "kelvin:error/duplicate-property-definition-error"
	DuplicateUserDefinitionError	ErrorCategory = "kelvin:error/duplicate-user-definition-error"
	DuplicateDatabaseDefinitionError	ErrorCategory = "kelvin:error/duplicate-database-definition-error"
	DuplicateOperatorDefinitionError	ErrorCategory = "kelvin:error/duplicate-operator-definition-error"
	DuplicateViewDefinitionError	ErrorCategory = "kelvin:error/duplicate-view-definition-error"
	DuplicateFunctionDefinitionError	ErrorCategory = "kelvin:error/duplicate-function-definition-error"
	DuplicateConstraintDefinitionError	ErrorCategory = "kelvin:error/duplicate-constraint-definition-error"
	DuplicateCastDefinitionError	ErrorCategory = "kelvin:error/duplicate-cast-definition-error"
	DuplicateMigrationError	ErrorCategory = "kelvin:error/duplicate-migration-error"
	SessionTimeoutError	ErrorCategory = "kelvin:error/session-timeout-error"
	IdleSessionTimeoutError	ErrorCategory = "kelvin:error/idle-session-timeout-error"
	QueryTimeoutError	ErrorCategory = "kelvin:error/query-timeout-error"
	TransactionTimeoutError	ErrorCategory = "kelvin:error/transaction-timeout-error"
	IdleTransactionTimeoutError	ErrorCategory = "kelvin:error/idle-transaction-timeout-error"
	ExecutionError	ErrorCategory = "kelvin:error/execution-error"
	InvalidValueError	ErrorCategory = "kelvin:error/invalid-value-error"
	DivisionByZeroError	ErrorCategory = "kelvin:error/division-by-zero-error"
	NumericOutOfRangeError	ErrorCategory = "kelvin:error/numeric-out-of-range-error"
	AccessPolicyError	ErrorCategory = "kelvin:error/access-policy-error"
	QueryAssertionError	ErrorCategory = "kelvin:error/query-assertion-error"
	IntegrityError	ErrorCategory = "kelvin:error/integrity-error"
	ConstraintViolationError	ErrorCategory = "kelvin:error/constraint-violation-error"
	CardinalityViolationError	ErrorCategory = "kelvin:error/cardinality-violation-error"
	MissingRequiredError	ErrorCategory = "kelvin:error/missing-required-error"
	TransactionError	ErrorCategory = "kelvin:error/transaction-error"
	TransactionConflictError	ErrorCategory = "kelvin:error/transaction-conflict-error"
	TransactionSerializationError	ErrorCategory = "kelvin:error/transaction-serialization-error"
	TransactionDeadlockError	ErrorCategory = "kelvin:error/transaction-deadlock-error"
	WatchError	ErrorCategory = "kelvin:error/watch-error"
	ConfigurationError	ErrorCategory = "kelvin:error/configuration-error"
	AccessError	ErrorCategory = "kelvin:error/access-error"
	AuthenticationError	ErrorCategory = "kelvin:error/authentication-error"
	AvailabilityError	ErrorCategory = "kelvin:error/availability-error"
	BackendUnavailableError	ErrorCategory = "kelvin:error/backend-unavailable-error"
	ServerOfflineError	ErrorCategory = "kelvin:error/server-offline-error"
	UnknownTenantError	ErrorCategory = "kelvin:error/unknown-tenant-error"
	ServerBlockedError	ErrorCategory = "kelvin:error/server-blocked-error"
	BackendError	ErrorCategory = "kelvin:error/backend-error"
	UnsupportedBackendFeatureError	ErrorCategory = "kelvin:error/unsupported-backend-feature-error"
	ClientError	ErrorCategory = "kelvin:error/client-error"
	ClientConnectionError	ErrorCategory = "kelvin:error/client-connection-error"
	ClientConnectionFailedError	ErrorCategory = "kelvin:error/client-connection-failed-error"
	ClientConnectionFailedTemporarilyError	ErrorCategory = "kelvin:error/client-connection-failed-temporarily-error"
	ClientConnectionTimeoutError	ErrorCategory = "kelvin:error/client-connection-timeout-error"
	ClientConnectionClosedError	ErrorCategory = "kelvin:error/client-connection-closed-error"
	InterfaceError	ErrorCategory = "kelvin:error/interface-error"
	QueryArgumentError	ErrorCategory = "kelvin:error/query-argument-error"
	MissingArgumentError	ErrorCategory = "kelvin:error/missing-argument-error"
	UnknownArgumentError	ErrorCategory = "kelvin:error/unknown-argument-error"
	InvalidArgumentError	ErrorCategory = "kelvin:error/invalid-argument-error"
	NoDataError	ErrorCategory = "kelvin:error/no-data-error"
	InternalClientError	ErrorCategory = "kelvin:error/internal-client-error"
)

// categoryMatch reports whether c is the leaf category or any ancestor
// category associated with a given error type.
func categoryMatch(c ErrorCategory, chain []ErrorCategory) bool {
	for _, candidate := range chain {
		if c == candidate {
			return true
		}
	}
	return false
}

// tagMatch reports whether t is present in a given error type's tag set.
func tagMatch(t ErrorTag, tags []ErrorTag) bool {
	for _, candidate := range tags {
		if t == candidate {
			return true
		}
	}
	return false
}

// errorLabel renders the "kelvin.XError: detail" form shared by every
// generated error type, preferring the wrapped error's text over msg once
// one has been attached.
func errorLabel(name, msg string, err error) string {
	if err != nil {
		msg = err.Error()
	}
	return "kelvin." + name + ": " + msg
}

type internalServerError struct {
	msg string
	err error
}

var internalServerErrorCategories = []ErrorCategory{InternalServerError}
var internalServerErrorTags []ErrorTag

func (e *internalServerError) Error() string { return errorLabel("InternalServerError", e.msg, e.err) }

func (e *internalServerError) Unwrap() error { return e.err }

func (e *internalServerError) Category(c ErrorCategory) bool { return categoryMatch(c, internalServerErrorCategories) }

func (e *internalServerError) HasTag(tag ErrorTag) bool { return tagMatch(tag, internalServerErrorTags) }

type unsupportedFeatureError struct {
	msg string
	err error
}

var unsupportedFeatureErrorCategories = []ErrorCategory{UnsupportedFeatureError}
var unsupportedFeatureErrorTags []ErrorTag

func (e *unsupportedFeatureError) Error() string { return errorLabel("UnsupportedFeatureError", e.msg, e.err) }

func (e *unsupportedFeatureError) Unwrap() error { return e.err }

func (e *unsupportedFeatureError) Category(c ErrorCategory) bool { return categoryMatch(c, unsupportedFeatureErrorCategories) }

func (e *unsupportedFeatureError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unsupportedFeatureErrorTags) }

type protocolError struct {
	msg string
	err error
}

var protocolErrorCategories = []ErrorCategory{ProtocolError}
var protocolErrorTags []ErrorTag

func (e *protocolError) Error() string { return errorLabel("ProtocolError", e.msg, e.err) }

func (e *protocolError) Unwrap() error { return e.err }

func (e *protocolError) Category(c ErrorCategory) bool { return categoryMatch(c, protocolErrorCategories) }

func (e *protocolError) HasTag(tag ErrorTag) bool { return tagMatch(tag, protocolErrorTags) }

type binaryProtocolError struct {
	msg string
	err error
}

var binaryProtocolErrorCategories = []ErrorCategory{BinaryProtocolError, ProtocolError}
var binaryProtocolErrorTags []ErrorTag

func (e *binaryProtocolError) Error() string { return errorLabel("BinaryProtocolError", e.msg, e.err) }

func (e *binaryProtocolError) Unwrap() error { return e.err }

func (e *binaryProtocolError) Category(c ErrorCategory) bool { return categoryMatch(c, binaryProtocolErrorCategories) }

func (e *binaryProtocolError) HasTag(tag ErrorTag) bool { return tagMatch(tag, binaryProtocolErrorTags) }

type unsupportedProtocolVersionError struct {
	msg string
	err error
}

var unsupportedProtocolVersionErrorCategories = []ErrorCategory{UnsupportedProtocolVersionError, BinaryProtocolError, ProtocolError}
var unsupportedProtocolVersionErrorTags []ErrorTag

func (e *unsupportedProtocolVersionError) Error() string { return errorLabel("UnsupportedProtocolVersionError", e.msg, e.err) }

func (e *unsupportedProtocolVersionError) Unwrap() error { return e.err }

func (e *unsupportedProtocolVersionError) Category(c ErrorCategory) bool { return categoryMatch(c, unsupportedProtocolVersionErrorCategories) }

func (e *unsupportedProtocolVersionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unsupportedProtocolVersionErrorTags) }

type typeSpecNotFoundError struct {
	msg string
	err error
}

var typeSpecNotFoundErrorCategories = []ErrorCategory{TypeSpecNotFoundError, BinaryProtocolError, ProtocolError}
var typeSpecNotFoundErrorTags []ErrorTag

func (e *typeSpecNotFoundError) Error() string { return errorLabel("TypeSpecNotFoundError", e.msg, e.err) }

func (e *typeSpecNotFoundError) Unwrap() error { return e.err }

func (e *typeSpecNotFoundError) Category(c ErrorCategory) bool { return categoryMatch(c, typeSpecNotFoundErrorCategories) }

func (e *typeSpecNotFoundError) HasTag(tag ErrorTag) bool { return tagMatch(tag, typeSpecNotFoundErrorTags) }

type unexpectedMessageError struct {
	msg string
	err error
}

var unexpectedMessageErrorCategories = []ErrorCategory{UnexpectedMessageError, BinaryProtocolError, ProtocolError}
var unexpectedMessageErrorTags []ErrorTag

func (e *unexpectedMessageError) Error() string { return errorLabel("UnexpectedMessageError", e.msg, e.err) }

func (e *unexpectedMessageError) Unwrap() error { return e.err }

func (e *unexpectedMessageError) Category(c ErrorCategory) bool { return categoryMatch(c, unexpectedMessageErrorCategories) }

func (e *unexpectedMessageError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unexpectedMessageErrorTags) }

type inputDataError struct {
	msg string
	err error
}

var inputDataErrorCategories = []ErrorCategory{InputDataError, ProtocolError}
var inputDataErrorTags []ErrorTag

func (e *inputDataError) Error() string { return errorLabel("InputDataError", e.msg, e.err) }

func (e *inputDataError) Unwrap() error { return e.err }

func (e *inputDataError) Category(c ErrorCategory) bool { return categoryMatch(c, inputDataErrorCategories) }

func (e *inputDataError) HasTag(tag ErrorTag) bool { return tagMatch(tag, inputDataErrorTags) }

type parameterTypeMismatchError struct {
	msg string
	err error
}

var parameterTypeMismatchErrorCategories = []ErrorCategory{ParameterTypeMismatchError, InputDataError, ProtocolError}
var parameterTypeMismatchErrorTags []ErrorTag

func (e *parameterTypeMismatchError) Error() string { return errorLabel("ParameterTypeMismatchError", e.msg, e.err) }

func (e *parameterTypeMismatchError) Unwrap() error { return e.err }

func (e *parameterTypeMismatchError) Category(c ErrorCategory) bool { return categoryMatch(c, parameterTypeMismatchErrorCategories) }

func (e *parameterTypeMismatchError) HasTag(tag ErrorTag) bool { return tagMatch(tag, parameterTypeMismatchErrorTags) }

type stateMismatchError struct {
	msg string
	err error
}

var stateMismatchErrorCategories = []ErrorCategory{StateMismatchError, InputDataError, ProtocolError}
var stateMismatchErrorTags = []ErrorTag{ShouldRetry}

func (e *stateMismatchError) Error() string { return errorLabel("StateMismatchError", e.msg, e.err) }

func (e *stateMismatchError) Unwrap() error { return e.err }

func (e *stateMismatchError) Category(c ErrorCategory) bool { return categoryMatch(c, stateMismatchErrorCategories) }

func (e *stateMismatchError) HasTag(tag ErrorTag) bool { return tagMatch(tag, stateMismatchErrorTags) }

type resultCardinalityMismatchError struct {
	msg string
	err error
}

var resultCardinalityMismatchErrorCategories = []ErrorCategory{ResultCardinalityMismatchError, ProtocolError}
var resultCardinalityMismatchErrorTags []ErrorTag

func (e *resultCardinalityMismatchError) Error() string { return errorLabel("ResultCardinalityMismatchError", e.msg, e.err) }

func (e *resultCardinalityMismatchError) Unwrap() error { return e.err }

func (e *resultCardinalityMismatchError) Category(c ErrorCategory) bool { return categoryMatch(c, resultCardinalityMismatchErrorCategories) }

func (e *resultCardinalityMismatchError) HasTag(tag ErrorTag) bool { return tagMatch(tag, resultCardinalityMismatchErrorTags) }

type capabilityError struct {
	msg string
	err error
}

var capabilityErrorCategories = []ErrorCategory{CapabilityError, ProtocolError}
var capabilityErrorTags []ErrorTag

func (e *capabilityError) Error() string { return errorLabel("CapabilityError", e.msg, e.err) }

func (e *capabilityError) Unwrap() error { return e.err }

func (e *capabilityError) Category(c ErrorCategory) bool { return categoryMatch(c, capabilityErrorCategories) }

func (e *capabilityError) HasTag(tag ErrorTag) bool { return tagMatch(tag, capabilityErrorTags) }

type unsupportedCapabilityError struct {
	msg string
	err error
}

var unsupportedCapabilityErrorCategories = []ErrorCategory{UnsupportedCapabilityError, CapabilityError, ProtocolError}
var unsupportedCapabilityErrorTags []ErrorTag

func (e *unsupportedCapabilityError) Error() string { return errorLabel("UnsupportedCapabilityError", e.msg, e.err) }

func (e *unsupportedCapabilityError) Unwrap() error { return e.err }

func (e *unsupportedCapabilityError) Category(c ErrorCategory) bool { return categoryMatch(c, unsupportedCapabilityErrorCategories) }

func (e *unsupportedCapabilityError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unsupportedCapabilityErrorTags) }

type disabledCapabilityError struct {
	msg string
	err error
}

var disabledCapabilityErrorCategories = []ErrorCategory{DisabledCapabilityError, CapabilityError, ProtocolError}
var disabledCapabilityErrorTags []ErrorTag

func (e *disabledCapabilityError) Error() string { return errorLabel("DisabledCapabilityError", e.msg, e.err) }

func (e *disabledCapabilityError) Unwrap() error { return e.err }

func (e *disabledCapabilityError) Category(c ErrorCategory) bool { return categoryMatch(c, disabledCapabilityErrorCategories) }

func (e *disabledCapabilityError) HasTag(tag ErrorTag) bool { return tagMatch(tag, disabledCapabilityErrorTags) }

type queryError struct {
	msg string
	err error
}

var queryErrorCategories = []ErrorCategory{QueryError}
var queryErrorTags []ErrorTag

func (e *queryError) Error() string { return errorLabel("QueryError", e.msg, e.err) }

func (e *queryError) Unwrap() error { return e.err }

func (e *queryError) Category(c ErrorCategory) bool { return categoryMatch(c, queryErrorCategories) }

func (e *queryError) HasTag(tag ErrorTag) bool { return tagMatch(tag, queryErrorTags) }

type invalidSyntaxError struct {
	msg string
	err error
}

var invalidSyntaxErrorCategories = []ErrorCategory{InvalidSyntaxError, QueryError}
var invalidSyntaxErrorTags []ErrorTag

func (e *invalidSyntaxError) Error() string { return errorLabel("InvalidSyntaxError", e.msg, e.err) }

func (e *invalidSyntaxError) Unwrap() error { return e.err }

func (e *invalidSyntaxError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidSyntaxErrorCategories) }

func (e *invalidSyntaxError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidSyntaxErrorTags) }

type edgeQLSyntaxError struct {
	msg string
	err error
}

var edgeQLSyntaxErrorCategories = []ErrorCategory{EdgeQLSyntaxError, InvalidSyntaxError, QueryError}
var edgeQLSyntaxErrorTags []ErrorTag

func (e *edgeQLSyntaxError) Error() string { return errorLabel("EdgeQLSyntaxError", e.msg, e.err) }

func (e *edgeQLSyntaxError) Unwrap() error { return e.err }

func (e *edgeQLSyntaxError) Category(c ErrorCategory) bool { return categoryMatch(c, edgeQLSyntaxErrorCategories) }

func (e *edgeQLSyntaxError) HasTag(tag ErrorTag) bool { return tagMatch(tag, edgeQLSyntaxErrorTags) }

type schemaSyntaxError struct {
	msg string
	err error
}

var schemaSyntaxErrorCategories = []ErrorCategory{SchemaSyntaxError, InvalidSyntaxError, QueryError}
var schemaSyntaxErrorTags []ErrorTag

func (e *schemaSyntaxError) Error() string { return errorLabel("SchemaSyntaxError", e.msg, e.err) }

func (e *schemaSyntaxError) Unwrap() error { return e.err }

func (e *schemaSyntaxError) Category(c ErrorCategory) bool { return categoryMatch(c, schemaSyntaxErrorCategories) }

func (e *schemaSyntaxError) HasTag(tag ErrorTag) bool { return tagMatch(tag, schemaSyntaxErrorTags) }

type graphQLSyntaxError struct {
	msg string
	err error
}

var graphQLSyntaxErrorCategories = []ErrorCategory{GraphQLSyntaxError, InvalidSyntaxError, QueryError}
var graphQLSyntaxErrorTags []ErrorTag

func (e *graphQLSyntaxError) Error() string { return errorLabel("GraphQLSyntaxError", e.msg, e.err) }

func (e *graphQLSyntaxError) Unwrap() error { return e.err }

func (e *graphQLSyntaxError) Category(c ErrorCategory) bool { return categoryMatch(c, graphQLSyntaxErrorCategories) }

func (e *graphQLSyntaxError) HasTag(tag ErrorTag) bool { return tagMatch(tag, graphQLSyntaxErrorTags) }

type invalidTypeError struct {
	msg string
	err error
}

var invalidTypeErrorCategories = []ErrorCategory{InvalidTypeError, QueryError}
var invalidTypeErrorTags []ErrorTag

func (e *invalidTypeError) Error() string { return errorLabel("InvalidTypeError", e.msg, e.err) }

func (e *invalidTypeError) Unwrap() error { return e.err }

func (e *invalidTypeError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidTypeErrorCategories) }

func (e *invalidTypeError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidTypeErrorTags) }

type invalidTargetError struct {
	msg string
	err error
}

var invalidTargetErrorCategories = []ErrorCategory{InvalidTargetError, InvalidTypeError, QueryError}
var invalidTargetErrorTags []ErrorTag

func (e *invalidTargetError) Error() string { return errorLabel("InvalidTargetError", e.msg, e.err) }

func (e *invalidTargetError) Unwrap() error { return e.err }

func (e *invalidTargetError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidTargetErrorCategories) }

func (e *invalidTargetError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidTargetErrorTags) }

type invalidLinkTargetError struct {
	msg string
	err error
}

var invalidLinkTargetErrorCategories = []ErrorCategory{InvalidLinkTargetError, InvalidTargetError, InvalidTypeError, QueryError}
var invalidLinkTargetErrorTags []ErrorTag

func (e *invalidLinkTargetError) Error() string { return errorLabel("InvalidLinkTargetError", e.msg, e.err) }

func (e *invalidLinkTargetError) Unwrap() error { return e.err }

func (e *invalidLinkTargetError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidLinkTargetErrorCategories) }

func (e *invalidLinkTargetError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidLinkTargetErrorTags) }

type invalidPropertyTargetError struct {
	msg string
	err error
}

var invalidPropertyTargetErrorCategories = []ErrorCategory{InvalidPropertyTargetError, InvalidTargetError, InvalidTypeError, QueryError}
var invalidPropertyTargetErrorTags []ErrorTag

func (e *invalidPropertyTargetError) Error() string { return errorLabel("InvalidPropertyTargetError", e.msg, e.err) }

func (e *invalidPropertyTargetError) Unwrap() error { return e.err }

func (e *invalidPropertyTargetError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidPropertyTargetErrorCategories) }

func (e *invalidPropertyTargetError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidPropertyTargetErrorTags) }

type invalidReferenceError struct {
	msg string
	err error
}

var invalidReferenceErrorCategories = []ErrorCategory{InvalidReferenceError, QueryError}
var invalidReferenceErrorTags []ErrorTag

func (e *invalidReferenceError) Error() string { return errorLabel("InvalidReferenceError", e.msg, e.err) }

func (e *invalidReferenceError) Unwrap() error { return e.err }

func (e *invalidReferenceError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidReferenceErrorCategories) }

func (e *invalidReferenceError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidReferenceErrorTags) }

type unknownModuleError struct {
	msg string
	err error
}

var unknownModuleErrorCategories = []ErrorCategory{UnknownModuleError, InvalidReferenceError, QueryError}
var unknownModuleErrorTags []ErrorTag

func (e *unknownModuleError) Error() string { return errorLabel("UnknownModuleError", e.msg, e.err) }

func (e *unknownModuleError) Unwrap() error { return e.err }

func (e *unknownModuleError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownModuleErrorCategories) }

func (e *unknownModuleError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownModuleErrorTags) }

type unknownLinkError struct {
	msg string
	err error
}

var unknownLinkErrorCategories = []ErrorCategory{UnknownLinkError, InvalidReferenceError, QueryError}
var unknownLinkErrorTags []ErrorTag

func (e *unknownLinkError) Error() string { return errorLabel("UnknownLinkError", e.msg, e.err) }

func (e *unknownLinkError) Unwrap() error { return e.err }

func (e *unknownLinkError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownLinkErrorCategories) }

func (e *unknownLinkError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownLinkErrorTags) }

type unknownPropertyError struct {
	msg string
	err error
}

var unknownPropertyErrorCategories = []ErrorCategory{UnknownPropertyError, InvalidReferenceError, QueryError}
var unknownPropertyErrorTags []ErrorTag

func (e *unknownPropertyError) Error() string { return errorLabel("UnknownPropertyError", e.msg, e.err) }

func (e *unknownPropertyError) Unwrap() error { return e.err }

func (e *unknownPropertyError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownPropertyErrorCategories) }

func (e *unknownPropertyError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownPropertyErrorTags) }

type unknownUserError struct {
	msg string
	err error
}

var unknownUserErrorCategories = []ErrorCategory{UnknownUserError, InvalidReferenceError, QueryError}
var unknownUserErrorTags []ErrorTag

func (e *unknownUserError) Error() string { return errorLabel("UnknownUserError", e.msg, e.err) }

func (e *unknownUserError) Unwrap() error { return e.err }

func (e *unknownUserError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownUserErrorCategories) }

func (e *unknownUserError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownUserErrorTags) }

type unknownDatabaseError struct {
	msg string
	err error
}

var unknownDatabaseErrorCategories = []ErrorCategory{UnknownDatabaseError, InvalidReferenceError, QueryError}
var unknownDatabaseErrorTags []ErrorTag

func (e *unknownDatabaseError) Error() string { return errorLabel("UnknownDatabaseError", e.msg, e.err) }

func (e *unknownDatabaseError) Unwrap() error { return e.err }

func (e *unknownDatabaseError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownDatabaseErrorCategories) }

func (e *unknownDatabaseError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownDatabaseErrorTags) }

type unknownParameterError struct {
	msg string
	err error
}

var unknownParameterErrorCategories = []ErrorCategory{UnknownParameterError, InvalidReferenceError, QueryError}
var unknownParameterErrorTags []ErrorTag

func (e *unknownParameterError) Error() string { return errorLabel("UnknownParameterError", e.msg, e.err) }

func (e *unknownParameterError) Unwrap() error { return e.err }

func (e *unknownParameterError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownParameterErrorCategories) }

func (e *unknownParameterError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownParameterErrorTags) }

type deprecatedScopingError struct {
	msg string
	err error
}

var deprecatedScopingErrorCategories = []ErrorCategory{DeprecatedScopingError, InvalidReferenceError, QueryError}
var deprecatedScopingErrorTags []ErrorTag

func (e *deprecatedScopingError) Error() string { return errorLabel("DeprecatedScopingError", e.msg, e.err) }

func (e *deprecatedScopingError) Unwrap() error { return e.err }

func (e *deprecatedScopingError) Category(c ErrorCategory) bool { return categoryMatch(c, deprecatedScopingErrorCategories) }

func (e *deprecatedScopingError) HasTag(tag ErrorTag) bool { return tagMatch(tag, deprecatedScopingErrorTags) }

type schemaError struct {
	msg string
	err error
}

var schemaErrorCategories = []ErrorCategory{SchemaError, QueryError}
var schemaErrorTags []ErrorTag

func (e *schemaError) Error() string { return errorLabel("SchemaError", e.msg, e.err) }

func (e *schemaError) Unwrap() error { return e.err }

func (e *schemaError) Category(c ErrorCategory) bool { return categoryMatch(c, schemaErrorCategories) }

func (e *schemaError) HasTag(tag ErrorTag) bool { return tagMatch(tag, schemaErrorTags) }

type schemaDefinitionError struct {
	msg string
	err error
}

var schemaDefinitionErrorCategories = []ErrorCategory{SchemaDefinitionError, QueryError}
var schemaDefinitionErrorTags []ErrorTag

func (e *schemaDefinitionError) Error() string { return errorLabel("SchemaDefinitionError", e.msg, e.err) }

func (e *schemaDefinitionError) Unwrap() error { return e.err }

func (e *schemaDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, schemaDefinitionErrorCategories) }

func (e *schemaDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, schemaDefinitionErrorTags) }

type invalidDefinitionError struct {
	msg string
	err error
}

var invalidDefinitionErrorCategories = []ErrorCategory{InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidDefinitionErrorTags []ErrorTag

func (e *invalidDefinitionError) Error() string { return errorLabel("InvalidDefinitionError", e.msg, e.err) }

func (e *invalidDefinitionError) Unwrap() error { return e.err }

func (e *invalidDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidDefinitionErrorCategories) }

func (e *invalidDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidDefinitionErrorTags) }

type invalidModuleDefinitionError struct {
	msg string
	err error
}

var invalidModuleDefinitionErrorCategories = []ErrorCategory{InvalidModuleDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidModuleDefinitionErrorTags []ErrorTag

func (e *invalidModuleDefinitionError) Error() string { return errorLabel("InvalidModuleDefinitionError", e.msg, e.err) }

func (e *invalidModuleDefinitionError) Unwrap() error { return e.err }

func (e *invalidModuleDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidModuleDefinitionErrorCategories) }

func (e *invalidModuleDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidModuleDefinitionErrorTags) }

type invalidLinkDefinitionError struct {
	msg string
	err error
}

var invalidLinkDefinitionErrorCategories = []ErrorCategory{InvalidLinkDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidLinkDefinitionErrorTags []ErrorTag

func (e *invalidLinkDefinitionError) Error() string { return errorLabel("InvalidLinkDefinitionError", e.msg, e.err) }

func (e *invalidLinkDefinitionError) Unwrap() error { return e.err }

func (e *invalidLinkDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidLinkDefinitionErrorCategories) }

func (e *invalidLinkDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidLinkDefinitionErrorTags) }

type invalidPropertyDefinitionError struct {
	msg string
	err error
}

var invalidPropertyDefinitionErrorCategories = []ErrorCategory{InvalidPropertyDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidPropertyDefinitionErrorTags []ErrorTag

func (e *invalidPropertyDefinitionError) Error() string { return errorLabel("InvalidPropertyDefinitionError", e.msg, e.err) }

func (e *invalidPropertyDefinitionError) Unwrap() error { return e.err }

func (e *invalidPropertyDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidPropertyDefinitionErrorCategories) }

func (e *invalidPropertyDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidPropertyDefinitionErrorTags) }

type invalidUserDefinitionError struct {
	msg string
	err error
}

var invalidUserDefinitionErrorCategories = []ErrorCategory{InvalidUserDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidUserDefinitionErrorTags []ErrorTag

func (e *invalidUserDefinitionError) Error() string { return errorLabel("InvalidUserDefinitionError", e.msg, e.err) }

func (e *invalidUserDefinitionError) Unwrap() error { return e.err }

func (e *invalidUserDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidUserDefinitionErrorCategories) }

func (e *invalidUserDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidUserDefinitionErrorTags) }

type invalidDatabaseDefinitionError struct {
	msg string
	err error
}

var invalidDatabaseDefinitionErrorCategories = []ErrorCategory{InvalidDatabaseDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidDatabaseDefinitionErrorTags []ErrorTag

func (e *invalidDatabaseDefinitionError) Error() string { return errorLabel("InvalidDatabaseDefinitionError", e.msg, e.err) }

func (e *invalidDatabaseDefinitionError) Unwrap() error { return e.err }

func (e *invalidDatabaseDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidDatabaseDefinitionErrorCategories) }

func (e *invalidDatabaseDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidDatabaseDefinitionErrorTags) }

type invalidOperatorDefinitionError struct {
	msg string
	err error
}

var invalidOperatorDefinitionErrorCategories = []ErrorCategory{InvalidOperatorDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidOperatorDefinitionErrorTags []ErrorTag

func (e *invalidOperatorDefinitionError) Error() string { return errorLabel("InvalidOperatorDefinitionError", e.msg, e.err) }

func (e *invalidOperatorDefinitionError) Unwrap() error { return e.err }

func (e *invalidOperatorDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidOperatorDefinitionErrorCategories) }

func (e *invalidOperatorDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidOperatorDefinitionErrorTags) }

type invalidAliasDefinitionError struct {
	msg string
	err error
}

var invalidAliasDefinitionErrorCategories = []ErrorCategory{InvalidAliasDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidAliasDefinitionErrorTags []ErrorTag

func (e *invalidAliasDefinitionError) Error() string { return errorLabel("InvalidAliasDefinitionError", e.msg, e.err) }

func (e *invalidAliasDefinitionError) Unwrap() error { return e.err }

func (e *invalidAliasDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidAliasDefinitionErrorCategories) }

func (e *invalidAliasDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidAliasDefinitionErrorTags) }

type invalidFunctionDefinitionError struct {
	msg string
	err error
}

var invalidFunctionDefinitionErrorCategories = []ErrorCategory{InvalidFunctionDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidFunctionDefinitionErrorTags []ErrorTag

func (e *invalidFunctionDefinitionError) Error() string { return errorLabel("InvalidFunctionDefinitionError", e.msg, e.err) }

func (e *invalidFunctionDefinitionError) Unwrap() error { return e.err }

func (e *invalidFunctionDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidFunctionDefinitionErrorCategories) }

func (e *invalidFunctionDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidFunctionDefinitionErrorTags) }

type invalidConstraintDefinitionError struct {
	msg string
	err error
}

var invalidConstraintDefinitionErrorCategories = []ErrorCategory{InvalidConstraintDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidConstraintDefinitionErrorTags []ErrorTag

func (e *invalidConstraintDefinitionError) Error() string { return errorLabel("InvalidConstraintDefinitionError", e.msg, e.err) }

func (e *invalidConstraintDefinitionError) Unwrap() error { return e.err }

func (e *invalidConstraintDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidConstraintDefinitionErrorCategories) }

func (e *invalidConstraintDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidConstraintDefinitionErrorTags) }

type invalidCastDefinitionError struct {
	msg string
	err error
}

var invalidCastDefinitionErrorCategories = []ErrorCategory{InvalidCastDefinitionError, InvalidDefinitionError, SchemaDefinitionError, QueryError}
var invalidCastDefinitionErrorTags []ErrorTag

func (e *invalidCastDefinitionError) Error() string { return errorLabel("InvalidCastDefinitionError", e.msg, e.err) }

func (e *invalidCastDefinitionError) Unwrap() error { return e.err }

func (e *invalidCastDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidCastDefinitionErrorCategories) }

func (e *invalidCastDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidCastDefinitionErrorTags) }

type duplicateDefinitionError struct {
	msg string
	err error
}

var duplicateDefinitionErrorCategories = []ErrorCategory{DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateDefinitionErrorTags []ErrorTag

func (e *duplicateDefinitionError) Error() string { return errorLabel("DuplicateDefinitionError", e.msg, e.err) }

func (e *duplicateDefinitionError) Unwrap() error { return e.err }

func (e *duplicateDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateDefinitionErrorCategories) }

func (e *duplicateDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateDefinitionErrorTags) }

type duplicateModuleDefinitionError struct {
	msg string
	err error
}

var duplicateModuleDefinitionErrorCategories = []ErrorCategory{DuplicateModuleDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateModuleDefinitionErrorTags []ErrorTag

func (e *duplicateModuleDefinitionError) Error() string { return errorLabel("DuplicateModuleDefinitionError", e.msg, e.err) }

func (e *duplicateModuleDefinitionError) Unwrap() error { return e.err }

func (e *duplicateModuleDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateModuleDefinitionErrorCategories) }

func (e *duplicateModuleDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateModuleDefinitionErrorTags) }

type duplicateLinkDefinitionError struct {
	msg string
	err error
}

var duplicateLinkDefinitionErrorCategories = []ErrorCategory{DuplicateLinkDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateLinkDefinitionErrorTags []ErrorTag

func (e *duplicateLinkDefinitionError) Error() string { return errorLabel("DuplicateLinkDefinitionError", e.msg, e.err) }

func (e *duplicateLinkDefinitionError) Unwrap() error { return e.err }

func (e *duplicateLinkDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateLinkDefinitionErrorCategories) }

func (e *duplicateLinkDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateLinkDefinitionErrorTags) }

type duplicatePropertyDefinitionError struct {
	msg string
	err error
}

var duplicatePropertyDefinitionErrorCategories = []ErrorCategory{DuplicatePropertyDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicatePropertyDefinitionErrorTags []ErrorTag

func (e *duplicatePropertyDefinitionError) Error() string { return errorLabel("DuplicatePropertyDefinitionError", e.msg, e.err) }

func (e *duplicatePropertyDefinitionError) Unwrap() error { return e.err }

func (e *duplicatePropertyDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicatePropertyDefinitionErrorCategories) }

func (e *duplicatePropertyDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicatePropertyDefinitionErrorTags) }

type duplicateUserDefinitionError struct {
	msg string
	err error
}

var duplicateUserDefinitionErrorCategories = []ErrorCategory{DuplicateUserDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateUserDefinitionErrorTags []ErrorTag

func (e *duplicateUserDefinitionError) Error() string { return errorLabel("DuplicateUserDefinitionError", e.msg, e.err) }

func (e *duplicateUserDefinitionError) Unwrap() error { return e.err }

func (e *duplicateUserDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateUserDefinitionErrorCategories) }

func (e *duplicateUserDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateUserDefinitionErrorTags) }

type duplicateDatabaseDefinitionError struct {
	msg string
	err error
}

var duplicateDatabaseDefinitionErrorCategories = []ErrorCategory{DuplicateDatabaseDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateDatabaseDefinitionErrorTags []ErrorTag

func (e *duplicateDatabaseDefinitionError) Error() string { return errorLabel("DuplicateDatabaseDefinitionError", e.msg, e.err) }

func (e *duplicateDatabaseDefinitionError) Unwrap() error { return e.err }

func (e *duplicateDatabaseDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateDatabaseDefinitionErrorCategories) }

func (e *duplicateDatabaseDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateDatabaseDefinitionErrorTags) }

type duplicateOperatorDefinitionError struct {
	msg string
	err error
}

var duplicateOperatorDefinitionErrorCategories = []ErrorCategory{DuplicateOperatorDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateOperatorDefinitionErrorTags []ErrorTag

func (e *duplicateOperatorDefinitionError) Error() string { return errorLabel("DuplicateOperatorDefinitionError", e.msg, e.err) }

func (e *duplicateOperatorDefinitionError) Unwrap() error { return e.err }

func (e *duplicateOperatorDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateOperatorDefinitionErrorCategories) }

func (e *duplicateOperatorDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateOperatorDefinitionErrorTags) }

type duplicateViewDefinitionError struct {
	msg string
	err error
}

var duplicateViewDefinitionErrorCategories = []ErrorCategory{DuplicateViewDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateViewDefinitionErrorTags []ErrorTag

func (e *duplicateViewDefinitionError) Error() string { return errorLabel("DuplicateViewDefinitionError", e.msg, e.err) }

func (e *duplicateViewDefinitionError) Unwrap() error { return e.err }

func (e *duplicateViewDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateViewDefinitionErrorCategories) }

func (e *duplicateViewDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateViewDefinitionErrorTags) }

type duplicateFunctionDefinitionError struct {
	msg string
	err error
}

var duplicateFunctionDefinitionErrorCategories = []ErrorCategory{DuplicateFunctionDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateFunctionDefinitionErrorTags []ErrorTag

func (e *duplicateFunctionDefinitionError) Error() string { return errorLabel("DuplicateFunctionDefinitionError", e.msg, e.err) }

func (e *duplicateFunctionDefinitionError) Unwrap() error { return e.err }

func (e *duplicateFunctionDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateFunctionDefinitionErrorCategories) }

func (e *duplicateFunctionDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateFunctionDefinitionErrorTags) }

type duplicateConstraintDefinitionError struct {
	msg string
	err error
}

var duplicateConstraintDefinitionErrorCategories = []ErrorCategory{DuplicateConstraintDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateConstraintDefinitionErrorTags []ErrorTag

func (e *duplicateConstraintDefinitionError) Error() string { return errorLabel("DuplicateConstraintDefinitionError", e.msg, e.err) }

func (e *duplicateConstraintDefinitionError) Unwrap() error { return e.err }

func (e *duplicateConstraintDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateConstraintDefinitionErrorCategories) }

func (e *duplicateConstraintDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateConstraintDefinitionErrorTags) }

type duplicateCastDefinitionError struct {
	msg string
	err error
}

var duplicateCastDefinitionErrorCategories = []ErrorCategory{DuplicateCastDefinitionError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateCastDefinitionErrorTags []ErrorTag

func (e *duplicateCastDefinitionError) Error() string { return errorLabel("DuplicateCastDefinitionError", e.msg, e.err) }

func (e *duplicateCastDefinitionError) Unwrap() error { return e.err }

func (e *duplicateCastDefinitionError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateCastDefinitionErrorCategories) }

func (e *duplicateCastDefinitionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateCastDefinitionErrorTags) }

type duplicateMigrationError struct {
	msg string
	err error
}

var duplicateMigrationErrorCategories = []ErrorCategory{DuplicateMigrationError, DuplicateDefinitionError, SchemaDefinitionError, QueryError}
var duplicateMigrationErrorTags []ErrorTag

func (e *duplicateMigrationError) Error() string { return errorLabel("DuplicateMigrationError", e.msg, e.err) }

func (e *duplicateMigrationError) Unwrap() error { return e.err }

func (e *duplicateMigrationError) Category(c ErrorCategory) bool { return categoryMatch(c, duplicateMigrationErrorCategories) }

func (e *duplicateMigrationError) HasTag(tag ErrorTag) bool { return tagMatch(tag, duplicateMigrationErrorTags) }

type sessionTimeoutError struct {
	msg string
	err error
}

var sessionTimeoutErrorCategories = []ErrorCategory{SessionTimeoutError, QueryError}
var sessionTimeoutErrorTags []ErrorTag

func (e *sessionTimeoutError) Error() string { return errorLabel("SessionTimeoutError", e.msg, e.err) }

func (e *sessionTimeoutError) Unwrap() error { return e.err }

func (e *sessionTimeoutError) Category(c ErrorCategory) bool { return categoryMatch(c, sessionTimeoutErrorCategories) }

func (e *sessionTimeoutError) HasTag(tag ErrorTag) bool { return tagMatch(tag, sessionTimeoutErrorTags) }

type idleSessionTimeoutError struct {
	msg string
	err error
}

var idleSessionTimeoutErrorCategories = []ErrorCategory{IdleSessionTimeoutError, SessionTimeoutError, QueryError}
var idleSessionTimeoutErrorTags = []ErrorTag{ShouldRetry}

func (e *idleSessionTimeoutError) Error() string { return errorLabel("IdleSessionTimeoutError", e.msg, e.err) }

func (e *idleSessionTimeoutError) Unwrap() error { return e.err }

func (e *idleSessionTimeoutError) Category(c ErrorCategory) bool { return categoryMatch(c, idleSessionTimeoutErrorCategories) }

func (e *idleSessionTimeoutError) HasTag(tag ErrorTag) bool { return tagMatch(tag, idleSessionTimeoutErrorTags) }

type queryTimeoutError struct {
	msg string
	err error
}

var queryTimeoutErrorCategories = []ErrorCategory{QueryTimeoutError, SessionTimeoutError, QueryError}
var queryTimeoutErrorTags []ErrorTag

func (e *queryTimeoutError) Error() string { return errorLabel("QueryTimeoutError", e.msg, e.err) }

func (e *queryTimeoutError) Unwrap() error { return e.err }

func (e *queryTimeoutError) Category(c ErrorCategory) bool { return categoryMatch(c, queryTimeoutErrorCategories) }

func (e *queryTimeoutError) HasTag(tag ErrorTag) bool { return tagMatch(tag, queryTimeoutErrorTags) }

type transactionTimeoutError struct {
	msg string
	err error
}

var transactionTimeoutErrorCategories = []ErrorCategory{TransactionTimeoutError, SessionTimeoutError, QueryError}
var transactionTimeoutErrorTags []ErrorTag

func (e *transactionTimeoutError) Error() string { return errorLabel("TransactionTimeoutError", e.msg, e.err) }

func (e *transactionTimeoutError) Unwrap() error { return e.err }

func (e *transactionTimeoutError) Category(c ErrorCategory) bool { return categoryMatch(c, transactionTimeoutErrorCategories) }

func (e *transactionTimeoutError) HasTag(tag ErrorTag) bool { return tagMatch(tag, transactionTimeoutErrorTags) }

type idleTransactionTimeoutError struct {
	msg string
	err error
}

var idleTransactionTimeoutErrorCategories = []ErrorCategory{IdleTransactionTimeoutError, TransactionTimeoutError, SessionTimeoutError, QueryError}
var idleTransactionTimeoutErrorTags []ErrorTag

func (e *idleTransactionTimeoutError) Error() string { return errorLabel("IdleTransactionTimeoutError", e.msg, e.err) }

func (e *idleTransactionTimeoutError) Unwrap() error { return e.err }

func (e *idleTransactionTimeoutError) Category(c ErrorCategory) bool { return categoryMatch(c, idleTransactionTimeoutErrorCategories) }

func (e *idleTransactionTimeoutError) HasTag(tag ErrorTag) bool { return tagMatch(tag, idleTransactionTimeoutErrorTags) }

type executionError struct {
	msg string
	err error
}

var executionErrorCategories = []ErrorCategory{ExecutionError}
var executionErrorTags []ErrorTag

func (e *executionError) Error() string { return errorLabel("ExecutionError", e.msg, e.err) }

func (e *executionError) Unwrap() error { return e.err }

func (e *executionError) Category(c ErrorCategory) bool { return categoryMatch(c, executionErrorCategories) }

func (e *executionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, executionErrorTags) }

type invalidValueError struct {
	msg string
	err error
}

var invalidValueErrorCategories = []ErrorCategory{InvalidValueError, ExecutionError}
var invalidValueErrorTags []ErrorTag

func (e *invalidValueError) Error() string { return errorLabel("InvalidValueError", e.msg, e.err) }

func (e *invalidValueError) Unwrap() error { return e.err }

func (e *invalidValueError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidValueErrorCategories) }

func (e *invalidValueError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidValueErrorTags) }

type divisionByZeroError struct {
	msg string
	err error
}

var divisionByZeroErrorCategories = []ErrorCategory{DivisionByZeroError, InvalidValueError, ExecutionError}
var divisionByZeroErrorTags []ErrorTag

func (e *divisionByZeroError) Error() string { return errorLabel("DivisionByZeroError", e.msg, e.err) }

func (e *divisionByZeroError) Unwrap() error { return e.err }

func (e *divisionByZeroError) Category(c ErrorCategory) bool { return categoryMatch(c, divisionByZeroErrorCategories) }

func (e *divisionByZeroError) HasTag(tag ErrorTag) bool { return tagMatch(tag, divisionByZeroErrorTags) }

type numericOutOfRangeError struct {
	msg string
	err error
}

var numericOutOfRangeErrorCategories = []ErrorCategory{NumericOutOfRangeError, InvalidValueError, ExecutionError}
var numericOutOfRangeErrorTags []ErrorTag

func (e *numericOutOfRangeError) Error() string { return errorLabel("NumericOutOfRangeError", e.msg, e.err) }

func (e *numericOutOfRangeError) Unwrap() error { return e.err }

func (e *numericOutOfRangeError) Category(c ErrorCategory) bool { return categoryMatch(c, numericOutOfRangeErrorCategories) }

func (e *numericOutOfRangeError) HasTag(tag ErrorTag) bool { return tagMatch(tag, numericOutOfRangeErrorTags) }

type accessPolicyError struct {
	msg string
	err error
}

var accessPolicyErrorCategories = []ErrorCategory{AccessPolicyError, InvalidValueError, ExecutionError}
var accessPolicyErrorTags []ErrorTag

func (e *accessPolicyError) Error() string { return errorLabel("AccessPolicyError", e.msg, e.err) }

func (e *accessPolicyError) Unwrap() error { return e.err }

func (e *accessPolicyError) Category(c ErrorCategory) bool { return categoryMatch(c, accessPolicyErrorCategories) }

func (e *accessPolicyError) HasTag(tag ErrorTag) bool { return tagMatch(tag, accessPolicyErrorTags) }

type queryAssertionError struct {
	msg string
	err error
}

var queryAssertionErrorCategories = []ErrorCategory{QueryAssertionError, InvalidValueError, ExecutionError}
var queryAssertionErrorTags []ErrorTag

func (e *queryAssertionError) Error() string { return errorLabel("QueryAssertionError", e.msg, e.err) }

func (e *queryAssertionError) Unwrap() error { return e.err }

func (e *queryAssertionError) Category(c ErrorCategory) bool { return categoryMatch(c, queryAssertionErrorCategories) }

func (e *queryAssertionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, queryAssertionErrorTags) }

type integrityError struct {
	msg string
	err error
}

var integrityErrorCategories = []ErrorCategory{IntegrityError, ExecutionError}
var integrityErrorTags []ErrorTag

func (e *integrityError) Error() string { return errorLabel("IntegrityError", e.msg, e.err) }

func (e *integrityError) Unwrap() error { return e.err }

func (e *integrityError) Category(c ErrorCategory) bool { return categoryMatch(c, integrityErrorCategories) }

func (e *integrityError) HasTag(tag ErrorTag) bool { return tagMatch(tag, integrityErrorTags) }

type constraintViolationError struct {
	msg string
	err error
}

var constraintViolationErrorCategories = []ErrorCategory{ConstraintViolationError, IntegrityError, ExecutionError}
var constraintViolationErrorTags []ErrorTag

func (e *constraintViolationError) Error() string { return errorLabel("ConstraintViolationError", e.msg, e.err) }

func (e *constraintViolationError) Unwrap() error { return e.err }

func (e *constraintViolationError) Category(c ErrorCategory) bool { return categoryMatch(c, constraintViolationErrorCategories) }

func (e *constraintViolationError) HasTag(tag ErrorTag) bool { return tagMatch(tag, constraintViolationErrorTags) }

type cardinalityViolationError struct {
	msg string
	err error
}

var cardinalityViolationErrorCategories = []ErrorCategory{CardinalityViolationError, IntegrityError, ExecutionError}
var cardinalityViolationErrorTags []ErrorTag

func (e *cardinalityViolationError) Error() string { return errorLabel("CardinalityViolationError", e.msg, e.err) }

func (e *cardinalityViolationError) Unwrap() error { return e.err }

func (e *cardinalityViolationError) Category(c ErrorCategory) bool { return categoryMatch(c, cardinalityViolationErrorCategories) }

func (e *cardinalityViolationError) HasTag(tag ErrorTag) bool { return tagMatch(tag, cardinalityViolationErrorTags) }

type missingRequiredError struct {
	msg string
	err error
}

var missingRequiredErrorCategories = []ErrorCategory{MissingRequiredError, IntegrityError, ExecutionError}
var missingRequiredErrorTags []ErrorTag

func (e *missingRequiredError) Error() string { return errorLabel("MissingRequiredError", e.msg, e.err) }

func (e *missingRequiredError) Unwrap() error { return e.err }

func (e *missingRequiredError) Category(c ErrorCategory) bool { return categoryMatch(c, missingRequiredErrorCategories) }

func (e *missingRequiredError) HasTag(tag ErrorTag) bool { return tagMatch(tag, missingRequiredErrorTags) }

type transactionError struct {
	msg string
	err error
}

var transactionErrorCategories = []ErrorCategory{TransactionError, ExecutionError}
var transactionErrorTags []ErrorTag

func (e *transactionError) Error() string { return errorLabel("TransactionError", e.msg, e.err) }

func (e *transactionError) Unwrap() error { return e.err }

func (e *transactionError) Category(c ErrorCategory) bool { return categoryMatch(c, transactionErrorCategories) }

func (e *transactionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, transactionErrorTags) }

type transactionConflictError struct {
	msg string
	err error
}

var transactionConflictErrorCategories = []ErrorCategory{TransactionConflictError, TransactionError, ExecutionError}
var transactionConflictErrorTags = []ErrorTag{ShouldRetry}

func (e *transactionConflictError) Error() string { return errorLabel("TransactionConflictError", e.msg, e.err) }

func (e *transactionConflictError) Unwrap() error { return e.err }

func (e *transactionConflictError) Category(c ErrorCategory) bool { return categoryMatch(c, transactionConflictErrorCategories) }

func (e *transactionConflictError) HasTag(tag ErrorTag) bool { return tagMatch(tag, transactionConflictErrorTags) }

type transactionSerializationError struct {
	msg string
	err error
}

var transactionSerializationErrorCategories = []ErrorCategory{TransactionSerializationError, TransactionConflictError, TransactionError, ExecutionError}
var transactionSerializationErrorTags = []ErrorTag{ShouldRetry}

func (e *transactionSerializationError) Error() string { return errorLabel("TransactionSerializationError", e.msg, e.err) }

func (e *transactionSerializationError) Unwrap() error { return e.err }

func (e *transactionSerializationError) Category(c ErrorCategory) bool { return categoryMatch(c, transactionSerializationErrorCategories) }

func (e *transactionSerializationError) HasTag(tag ErrorTag) bool { return tagMatch(tag, transactionSerializationErrorTags) }

type transactionDeadlockError struct {
	msg string
	err error
}

var transactionDeadlockErrorCategories = []ErrorCategory{TransactionDeadlockError, TransactionConflictError, TransactionError, ExecutionError}
var transactionDeadlockErrorTags = []ErrorTag{ShouldRetry}

func (e *transactionDeadlockError) Error() string { return errorLabel("TransactionDeadlockError", e.msg, e.err) }

func (e *transactionDeadlockError) Unwrap() error { return e.err }

func (e *transactionDeadlockError) Category(c ErrorCategory) bool { return categoryMatch(c, transactionDeadlockErrorCategories) }

func (e *transactionDeadlockError) HasTag(tag ErrorTag) bool { return tagMatch(tag, transactionDeadlockErrorTags) }

type watchError struct {
	msg string
	err error
}

var watchErrorCategories = []ErrorCategory{WatchError, ExecutionError}
var watchErrorTags []ErrorTag

func (e *watchError) Error() string { return errorLabel("WatchError", e.msg, e.err) }

func (e *watchError) Unwrap() error { return e.err }

func (e *watchError) Category(c ErrorCategory) bool { return categoryMatch(c, watchErrorCategories) }

func (e *watchError) HasTag(tag ErrorTag) bool { return tagMatch(tag, watchErrorTags) }

type configurationError struct {
	msg string
	err error
}

var configurationErrorCategories = []ErrorCategory{ConfigurationError}
var configurationErrorTags []ErrorTag

func (e *configurationError) Error() string { return errorLabel("ConfigurationError", e.msg, e.err) }

func (e *configurationError) Unwrap() error { return e.err }

func (e *configurationError) Category(c ErrorCategory) bool { return categoryMatch(c, configurationErrorCategories) }

func (e *configurationError) HasTag(tag ErrorTag) bool { return tagMatch(tag, configurationErrorTags) }

type accessError struct {
	msg string
	err error
}

var accessErrorCategories = []ErrorCategory{AccessError}
var accessErrorTags []ErrorTag

func (e *accessError) Error() string { return errorLabel("AccessError", e.msg, e.err) }

func (e *accessError) Unwrap() error { return e.err }

func (e *accessError) Category(c ErrorCategory) bool { return categoryMatch(c, accessErrorCategories) }

func (e *accessError) HasTag(tag ErrorTag) bool { return tagMatch(tag, accessErrorTags) }

type authenticationError struct {
	msg string
	err error
}

var authenticationErrorCategories = []ErrorCategory{AuthenticationError, AccessError}
var authenticationErrorTags []ErrorTag

func (e *authenticationError) Error() string { return errorLabel("AuthenticationError", e.msg, e.err) }

func (e *authenticationError) Unwrap() error { return e.err }

func (e *authenticationError) Category(c ErrorCategory) bool { return categoryMatch(c, authenticationErrorCategories) }

func (e *authenticationError) HasTag(tag ErrorTag) bool { return tagMatch(tag, authenticationErrorTags) }

type availabilityError struct {
	msg string
	err error
}

var availabilityErrorCategories = []ErrorCategory{AvailabilityError}
var availabilityErrorTags []ErrorTag

func (e *availabilityError) Error() string { return errorLabel("AvailabilityError", e.msg, e.err) }

func (e *availabilityError) Unwrap() error { return e.err }

func (e *availabilityError) Category(c ErrorCategory) bool { return categoryMatch(c, availabilityErrorCategories) }

func (e *availabilityError) HasTag(tag ErrorTag) bool { return tagMatch(tag, availabilityErrorTags) }

type backendUnavailableError struct {
	msg string
	err error
}

var backendUnavailableErrorCategories = []ErrorCategory{BackendUnavailableError, AvailabilityError}
var backendUnavailableErrorTags = []ErrorTag{ShouldRetry}

func (e *backendUnavailableError) Error() string { return errorLabel("BackendUnavailableError", e.msg, e.err) }

func (e *backendUnavailableError) Unwrap() error { return e.err }

func (e *backendUnavailableError) Category(c ErrorCategory) bool { return categoryMatch(c, backendUnavailableErrorCategories) }

func (e *backendUnavailableError) HasTag(tag ErrorTag) bool { return tagMatch(tag, backendUnavailableErrorTags) }

type serverOfflineError struct {
	msg string
	err error
}

var serverOfflineErrorCategories = []ErrorCategory{ServerOfflineError, AvailabilityError}
var serverOfflineErrorTags = []ErrorTag{ShouldReconnect, ShouldRetry}

func (e *serverOfflineError) Error() string { return errorLabel("ServerOfflineError", e.msg, e.err) }

func (e *serverOfflineError) Unwrap() error { return e.err }

func (e *serverOfflineError) Category(c ErrorCategory) bool { return categoryMatch(c, serverOfflineErrorCategories) }

func (e *serverOfflineError) HasTag(tag ErrorTag) bool { return tagMatch(tag, serverOfflineErrorTags) }

type unknownTenantError struct {
	msg string
	err error
}

var unknownTenantErrorCategories = []ErrorCategory{UnknownTenantError, AvailabilityError}
var unknownTenantErrorTags = []ErrorTag{ShouldReconnect, ShouldRetry}

func (e *unknownTenantError) Error() string { return errorLabel("UnknownTenantError", e.msg, e.err) }

func (e *unknownTenantError) Unwrap() error { return e.err }

func (e *unknownTenantError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownTenantErrorCategories) }

func (e *unknownTenantError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownTenantErrorTags) }

type serverBlockedError struct {
	msg string
	err error
}

var serverBlockedErrorCategories = []ErrorCategory{ServerBlockedError, AvailabilityError}
var serverBlockedErrorTags []ErrorTag

func (e *serverBlockedError) Error() string { return errorLabel("ServerBlockedError", e.msg, e.err) }

func (e *serverBlockedError) Unwrap() error { return e.err }

func (e *serverBlockedError) Category(c ErrorCategory) bool { return categoryMatch(c, serverBlockedErrorCategories) }

func (e *serverBlockedError) HasTag(tag ErrorTag) bool { return tagMatch(tag, serverBlockedErrorTags) }

type backendError struct {
	msg string
	err error
}

var backendErrorCategories = []ErrorCategory{BackendError}
var backendErrorTags []ErrorTag

func (e *backendError) Error() string { return errorLabel("BackendError", e.msg, e.err) }

func (e *backendError) Unwrap() error { return e.err }

func (e *backendError) Category(c ErrorCategory) bool { return categoryMatch(c, backendErrorCategories) }

func (e *backendError) HasTag(tag ErrorTag) bool { return tagMatch(tag, backendErrorTags) }

type unsupportedBackendFeatureError struct {
	msg string
	err error
}

var unsupportedBackendFeatureErrorCategories = []ErrorCategory{UnsupportedBackendFeatureError, BackendError}
var unsupportedBackendFeatureErrorTags []ErrorTag

func (e *unsupportedBackendFeatureError) Error() string { return errorLabel("UnsupportedBackendFeatureError", e.msg, e.err) }

func (e *unsupportedBackendFeatureError) Unwrap() error { return e.err }

func (e *unsupportedBackendFeatureError) Category(c ErrorCategory) bool { return categoryMatch(c, unsupportedBackendFeatureErrorCategories) }

func (e *unsupportedBackendFeatureError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unsupportedBackendFeatureErrorTags) }

type clientError struct {
	msg string
	err error
}

var clientErrorCategories = []ErrorCategory{ClientError}
var clientErrorTags []ErrorTag

func (e *clientError) Error() string { return errorLabel("ClientError", e.msg, e.err) }

func (e *clientError) Unwrap() error { return e.err }

func (e *clientError) Category(c ErrorCategory) bool { return categoryMatch(c, clientErrorCategories) }

func (e *clientError) HasTag(tag ErrorTag) bool { return tagMatch(tag, clientErrorTags) }

type clientConnectionError struct {
	msg string
	err error
}

var clientConnectionErrorCategories = []ErrorCategory{ClientConnectionError, ClientError}
var clientConnectionErrorTags []ErrorTag

func (e *clientConnectionError) Error() string { return errorLabel("ClientConnectionError", e.msg, e.err) }

func (e *clientConnectionError) Unwrap() error { return e.err }

func (e *clientConnectionError) Category(c ErrorCategory) bool { return categoryMatch(c, clientConnectionErrorCategories) }

func (e *clientConnectionError) HasTag(tag ErrorTag) bool { return tagMatch(tag, clientConnectionErrorTags) }

type clientConnectionFailedError struct {
	msg string
	err error
}

var clientConnectionFailedErrorCategories = []ErrorCategory{ClientConnectionFailedError, ClientConnectionError, ClientError}
var clientConnectionFailedErrorTags []ErrorTag

func (e *clientConnectionFailedError) Error() string { return errorLabel("ClientConnectionFailedError", e.msg, e.err) }

func (e *clientConnectionFailedError) Unwrap() error { return e.err }

func (e *clientConnectionFailedError) Category(c ErrorCategory) bool { return categoryMatch(c, clientConnectionFailedErrorCategories) }

func (e *clientConnectionFailedError) HasTag(tag ErrorTag) bool { return tagMatch(tag, clientConnectionFailedErrorTags) }

type clientConnectionFailedTemporarilyError struct {
	msg string
	err error
}

var clientConnectionFailedTemporarilyErrorCategories = []ErrorCategory{ClientConnectionFailedTemporarilyError, ClientConnectionFailedError, ClientConnectionError, ClientError}
var clientConnectionFailedTemporarilyErrorTags = []ErrorTag{ShouldReconnect, ShouldRetry}

func (e *clientConnectionFailedTemporarilyError) Error() string { return errorLabel("ClientConnectionFailedTemporarilyError", e.msg, e.err) }

func (e *clientConnectionFailedTemporarilyError) Unwrap() error { return e.err }

func (e *clientConnectionFailedTemporarilyError) Category(c ErrorCategory) bool { return categoryMatch(c, clientConnectionFailedTemporarilyErrorCategories) }

func (e *clientConnectionFailedTemporarilyError) HasTag(tag ErrorTag) bool { return tagMatch(tag, clientConnectionFailedTemporarilyErrorTags) }

type clientConnectionTimeoutError struct {
	msg string
	err error
}

var clientConnectionTimeoutErrorCategories = []ErrorCategory{ClientConnectionTimeoutError, ClientConnectionError, ClientError}
var clientConnectionTimeoutErrorTags = []ErrorTag{ShouldReconnect, ShouldRetry}

func (e *clientConnectionTimeoutError) Error() string { return errorLabel("ClientConnectionTimeoutError", e.msg, e.err) }

func (e *clientConnectionTimeoutError) Unwrap() error { return e.err }

func (e *clientConnectionTimeoutError) Category(c ErrorCategory) bool { return categoryMatch(c, clientConnectionTimeoutErrorCategories) }

func (e *clientConnectionTimeoutError) HasTag(tag ErrorTag) bool { return tagMatch(tag, clientConnectionTimeoutErrorTags) }

type clientConnectionClosedError struct {
	msg string
	err error
}

var clientConnectionClosedErrorCategories = []ErrorCategory{ClientConnectionClosedError, ClientConnectionError, ClientError}
var clientConnectionClosedErrorTags = []ErrorTag{ShouldReconnect, ShouldRetry}

func (e *clientConnectionClosedError) Error() string { return errorLabel("ClientConnectionClosedError", e.msg, e.err) }

func (e *clientConnectionClosedError) Unwrap() error { return e.err }

func (e *clientConnectionClosedError) Category(c ErrorCategory) bool { return categoryMatch(c, clientConnectionClosedErrorCategories) }

func (e *clientConnectionClosedError) HasTag(tag ErrorTag) bool { return tagMatch(tag, clientConnectionClosedErrorTags) }

type interfaceError struct {
	msg string
	err error
}

var interfaceErrorCategories = []ErrorCategory{InterfaceError, ClientError}
var interfaceErrorTags []ErrorTag

func (e *interfaceError) Error() string { return errorLabel("InterfaceError", e.msg, e.err) }

func (e *interfaceError) Unwrap() error { return e.err }

func (e *interfaceError) Category(c ErrorCategory) bool { return categoryMatch(c, interfaceErrorCategories) }

func (e *interfaceError) HasTag(tag ErrorTag) bool { return tagMatch(tag, interfaceErrorTags) }

type queryArgumentError struct {
	msg string
	err error
}

var queryArgumentErrorCategories = []ErrorCategory{QueryArgumentError, InterfaceError, ClientError}
var queryArgumentErrorTags []ErrorTag

func (e *queryArgumentError) Error() string { return errorLabel("QueryArgumentError", e.msg, e.err) }

func (e *queryArgumentError) Unwrap() error { return e.err }

func (e *queryArgumentError) Category(c ErrorCategory) bool { return categoryMatch(c, queryArgumentErrorCategories) }

func (e *queryArgumentError) HasTag(tag ErrorTag) bool { return tagMatch(tag, queryArgumentErrorTags) }

type missingArgumentError struct {
	msg string
	err error
}

var missingArgumentErrorCategories = []ErrorCategory{MissingArgumentError, QueryArgumentError, InterfaceError, ClientError}
var missingArgumentErrorTags []ErrorTag

func (e *missingArgumentError) Error() string { return errorLabel("MissingArgumentError", e.msg, e.err) }

func (e *missingArgumentError) Unwrap() error { return e.err }

func (e *missingArgumentError) Category(c ErrorCategory) bool { return categoryMatch(c, missingArgumentErrorCategories) }

func (e *missingArgumentError) HasTag(tag ErrorTag) bool { return tagMatch(tag, missingArgumentErrorTags) }

type unknownArgumentError struct {
	msg string
	err error
}

var unknownArgumentErrorCategories = []ErrorCategory{UnknownArgumentError, QueryArgumentError, InterfaceError, ClientError}
var unknownArgumentErrorTags []ErrorTag

func (e *unknownArgumentError) Error() string { return errorLabel("UnknownArgumentError", e.msg, e.err) }

func (e *unknownArgumentError) Unwrap() error { return e.err }

func (e *unknownArgumentError) Category(c ErrorCategory) bool { return categoryMatch(c, unknownArgumentErrorCategories) }

func (e *unknownArgumentError) HasTag(tag ErrorTag) bool { return tagMatch(tag, unknownArgumentErrorTags) }

type invalidArgumentError struct {
	msg string
	err error
}

var invalidArgumentErrorCategories = []ErrorCategory{InvalidArgumentError, QueryArgumentError, InterfaceError, ClientError}
var invalidArgumentErrorTags []ErrorTag

func (e *invalidArgumentError) Error() string { return errorLabel("InvalidArgumentError", e.msg, e.err) }

func (e *invalidArgumentError) Unwrap() error { return e.err }

func (e *invalidArgumentError) Category(c ErrorCategory) bool { return categoryMatch(c, invalidArgumentErrorCategories) }

func (e *invalidArgumentError) HasTag(tag ErrorTag) bool { return tagMatch(tag, invalidArgumentErrorTags) }

type noDataError struct {
	msg string
	err error
}

var noDataErrorCategories = []ErrorCategory{NoDataError, ClientError}
var noDataErrorTags []ErrorTag

func (e *noDataError) Error() string { return errorLabel("NoDataError", e.msg, e.err) }

func (e *noDataError) Unwrap() error { return e.err }

func (e *noDataError) Category(c ErrorCategory) bool { return categoryMatch(c, noDataErrorCategories) }

func (e *noDataError) HasTag(tag ErrorTag) bool { return tagMatch(tag, noDataErrorTags) }

type internalClientError struct {
	msg string
	err error
}

var internalClientErrorCategories = []ErrorCategory{InternalClientError, ClientError}
var internalClientErrorTags []ErrorTag

func (e *internalClientError) Error() string { return errorLabel("InternalClientError", e.msg, e.err) }

func (e *internalClientError) Unwrap() error { return e.err }

func (e *internalClientError) Category(c ErrorCategory) bool { return categoryMatch(c, internalClientErrorCategories) }

func (e *internalClientError) HasTag(tag ErrorTag) bool { return tagMatch(tag, internalClientErrorTags) }

// errorConstructors maps this driver's own sequential wire error codes to
// the concrete error type they construct. Codes are assigned in taxonomy
// declaration order; they are an index into this table, not a parsed
// category/subcategory/detail hierarchy read off a server response.
var errorConstructors = map[uint32]func(msg string) error{
	1: func(msg string) error { return &internalServerError{msg: msg} },
	2: func(msg string) error { return &unsupportedFeatureError{msg: msg} },
	3: func(msg string) error { return &protocolError{msg: msg} },
	4: func(msg string) error { return &binaryProtocolError{msg: msg} },
	5: func(msg string) error { return &unsupportedProtocolVersionError{msg: msg} },
	6: func(msg string) error { return &typeSpecNotFoundError{msg: msg} },
	7: func(msg string) error { return &unexpectedMessageError{msg: msg} },
	8: func(msg string) error { return &inputDataError{msg: msg} },
	9: func(msg string) error { return &parameterTypeMismatchError{msg: msg} },
	10: func(msg string) error { return &stateMismatchError{msg: msg} },
	11: func(msg string) error { return &resultCardinalityMismatchError{msg: msg} },
	12: func(msg string) error { return &capabilityError{msg: msg} },
	13: func(msg string) error { return &unsupportedCapabilityError{msg: msg} },
	14: func(msg string) error { return &disabledCapabilityError{msg: msg} },
	15: func(msg string) error { return &queryError{msg: msg} },
	16: func(msg string) error { return &invalidSyntaxError{msg: msg} },
	17: func(msg string) error { return &edgeQLSyntaxError{msg: msg} },
	18: func(msg string) error { return &schemaSyntaxError{msg: msg} },
	19: func(msg string) error { return &graphQLSyntaxError{msg: msg} },
	20: func(msg string) error { return &invalidTypeError{msg: msg} },
	21: func(msg string) error { return &invalidTargetError{msg: msg} },
	22: func(msg string) error { return &invalidLinkTargetError{msg: msg} },
	23: func(msg string) error { return &invalidPropertyTargetError{msg: msg} },
	24: func(msg string) error { return &invalidReferenceError{msg: msg} },
	25: func(msg string) error { return &unknownModuleError{msg: msg} },
	26: func(msg string) error { return &unknownLinkError{msg: msg} },
	27: func(msg string) error { return &unknownPropertyError{msg: msg} },
	28: func(msg string) error { return &unknownUserError{msg: msg} },
	29: func(msg string) error { return &unknownDatabaseError{msg: msg} },
	30: func(msg string) error { return &unknownParameterError{msg: msg} },
	31: func(msg string) error { return &deprecatedScopingError{msg: msg} },
	32: func(msg string) error { return &schemaError{msg: msg} },
	33: func(msg string) error { return &schemaDefinitionError{msg: msg} },
	34: func(msg string) error { return &invalidDefinitionError{msg: msg} },
	35: func(msg string) error { return &invalidModuleDefinitionError{msg: msg} },
	36: func(msg string) error { return &invalidLinkDefinitionError{msg: msg} },
	37: func(msg string) error { return &invalidPropertyDefinitionError{msg: msg} },
	38: func(msg string) error { return &invalidUserDefinitionError{msg: msg} },
	39: func(msg string) error { return &invalidDatabaseDefinitionError{msg: msg} },
	40: func(msg string) error { return &invalidOperatorDefinitionError{msg: msg} },
	41: func(msg string) error { return &invalidAliasDefinitionError{msg: msg} },
	42: func(msg string) error { return &invalidFunctionDefinitionError{msg: msg} },
	43: func(msg string) error { return &invalidConstraintDefinitionError{msg: msg} },
	44: func(msg string) error { return &invalidCastDefinitionError{msg: msg} },
	45: func(msg string) error { return &duplicateDefinitionError{msg: msg} },
	46: func(msg string) error { return &duplicateModuleDefinitionError{msg: msg} },
	47: func(msg string) error { return &duplicateLinkDefinitionError{msg: msg} },
	48: func(msg string) error { return &duplicatePropertyDefinitionError{msg: msg} },
	49: func(msg string) error { return &duplicateUserDefinitionError{msg: msg} },
	50: func(msg string) error { return &duplicateDatabaseDefinitionError{msg: msg} },
	51: func(msg string) error { return &duplicateOperatorDefinitionError{msg: msg} },
	52: func(msg string) error { return &duplicateViewDefinitionError{msg: msg} },
	53: func(msg string) error { return &duplicateFunctionDefinitionError{msg: msg} },
	54: func(msg string) error { return &duplicateConstraintDefinitionError{msg: msg} },
	55: func(msg string) error { return &duplicateCastDefinitionError{msg: msg} },
	56: func(msg string) error { return &duplicateMigrationError{msg: msg} },
	57: func(msg string) error { return &sessionTimeoutError{msg: msg} },
	58: func(msg string) error { return &idleSessionTimeoutError{msg: msg} },
	59: func(msg string) error { return &queryTimeoutError{msg: msg} },
	60: func(msg string) error { return &transactionTimeoutError{msg: msg} },
	61: func(msg string) error { return &idleTransactionTimeoutError{msg: msg} },
	62: func(msg string) error { return &executionError{msg: msg} },
	63: func(msg string) error { return &invalidValueError{msg: msg} },
	64: func(msg string) error { return &divisionByZeroError{msg: msg} },
	65: func(msg string) error { return &numericOutOfRangeError{msg: msg} },
	66: func(msg string) error { return &accessPolicyError{msg: msg} },
	67: func(msg string) error { return &queryAssertionError{msg: msg} },
	68: func(msg string) error { return &integrityError{msg: msg} },
	69: func(msg string) error { return &constraintViolationError{msg: msg} },
	70: func(msg string) error { return &cardinalityViolationError{msg: msg} },
	71: func(msg string) error { return &missingRequiredError{msg: msg} },
	72: func(msg string) error { return &transactionError{msg: msg} },
	73: func(msg string) error { return &transactionConflictError{msg: msg} },
	74: func(msg string) error { return &transactionSerializationError{msg: msg} },
	75: func(msg string) error { return &transactionDeadlockError{msg: msg} },
	76: func(msg string) error { return &watchError{msg: msg} },
	77: func(msg string) error { return &configurationError{msg: msg} },
	78: func(msg string) error { return &accessError{msg: msg} },
	79: func(msg string) error { return &authenticationError{msg: msg} },
	80: func(msg string) error { return &availabilityError{msg: msg} },
	81: func(msg string) error { return &backendUnavailableError{msg: msg} },
	82: func(msg string) error { return &serverOfflineError{msg: msg} },
	83: func(msg string) error { return &unknownTenantError{msg: msg} },
	84: func(msg string) error { return &serverBlockedError{msg: msg} },
	85: func(msg string) error { return &backendError{msg: msg} },
	86: func(msg string) error { return &unsupportedBackendFeatureError{msg: msg} },
	87: func(msg string) error { return &clientError{msg: msg} },
	88: func(msg string) error { return &clientConnectionError{msg: msg} },
	89: func(msg string) error { return &clientConnectionFailedError{msg: msg} },
	90: func(msg string) error { return &clientConnectionFailedTemporarilyError{msg: msg} },
	91: func(msg string) error { return &clientConnectionTimeoutError{msg: msg} },
	92: func(msg string) error { return &clientConnectionClosedError{msg: msg} },
	93: func(msg string) error { return &interfaceError{msg: msg} },
	94: func(msg string) error { return &queryArgumentError{msg: msg} },
	95: func(msg string) error { return &missingArgumentError{msg: msg} },
	96: func(msg string) error { return &unknownArgumentError{msg: msg} },
	97: func(msg string) error { return &invalidArgumentError{msg: msg} },
	98: func(msg string) error { return &noDataError{msg: msg} },
	99: func(msg string) error { return &internalClientError{msg: msg} },
}

func errorFromCode(code uint32, msg string) error {
	if ctor, ok := errorConstructors[code]; ok {
		return ctor(msg)
	}
	return &unexpectedMessageError{
		msg: fmt.Sprintf("invalid error code %v with message %q", code, msg),
	}
}
