package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// APIPath is the prefix all resource routes live under.
	APIPath = "/api"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// MsgInternalServerError is the generic 500 response message.
	MsgInternalServerError = "Internal server error"

	// MsgInvalidRequestBody is returned when the request body cannot be parsed.
	MsgInvalidRequestBody = "Invalid request body"
)
