package lyrion

import "fmt"

// TransportError is returned when the server could not be reached or it
// answered with a HTTP status other than 200.
type TransportError struct {
	Op         string // Op is the command which failed.
	StatusCode int    // StatusCode is the HTTP status, zero for network errors.
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lyrion %s: server returned HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("lyrion %s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when the server response could not be decoded or
// lacks a field which is required.
type ProtocolError struct {
	Op    string
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("lyrion %s: bad field %s: %s", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("lyrion %s: %s", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
