package errs

import "errors"

// Judging pipeline
var (
	ProblemNotFound      = errors.New("problem not found")
	NoTestCases          = errors.New("no test cases found for this problem")
	LanguageNotSupported = errors.New("language is not supported")
)

// Auth and users
var (
	InvalidCredentials = errors.New("invalid credentials")
	EmailTaken         = errors.New("email already in use")
	UserNotFound       = errors.New("user not found")
	EmailRequired      = errors.New("email is required")
	FailedToCreateUser = errors.New("failed to create user")
	GeneratingToken    = errors.New("error generating token")
)

// Problem authoring
var (
	DuplicateTitle = errors.New("problem with this title already exists")
)

var InternalError = errors.New("internal error")
