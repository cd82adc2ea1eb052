package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrAccountNotFound = errors.New("Account not found")
var ErrInvalidToken = errors.New("Invalid token")
var ErrConstraintViolation = errors.New("Database constraint violation")
var ErrDocumentCreation = errors.New("Failed to create statement document")
var ErrStorage = errors.New("File storage failure")
var ErrRetrievalFailed = errors.New("Failed to retrieve Statement")
