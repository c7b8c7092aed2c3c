package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type ErrorKind string

const (
	KindNetwork ErrorKind = "network"
	KindTimeout ErrorKind = "timeout"
	KindStatus  ErrorKind = "status"
	KindDecode  ErrorKind = "decode"
)

// CatalogError describes why a discover call produced no results.
type CatalogError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *CatalogError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("tmdb discover: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("tmdb discover %s: %v", e.Kind, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func classify(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}
