package domain

import "errors"

var (
	ErrTransportClosed   = errors.New("transport closed")
	ErrTransportNotReady = errors.New("transport not connected")
)
