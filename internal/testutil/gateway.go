// Package testutil provides scripted test doubles shared by use-case tests.
package testutil

import (
	"context"
	"sync"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
	"github.com/zydeico/sdk-go/internal/gateway"
)

// stubResult is one scripted gateway outcome.
type stubResult struct {
	resp *gateway.Response
	err  error
}

// StubGateway is a scripted Gateway that records every request and replays
// programmed results in order. It serializes concurrent calls so tests see a
// deterministic call sequence.
type StubGateway struct {
	mu       sync.Mutex
	results  []stubResult
	requests []gateway.Request
}

// NewStubGateway creates an empty scripted gateway.
func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

// EnqueueResponse programs a successful response with the given status and body.
func (s *StubGateway) EnqueueResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, stubResult{resp: &gateway.Response{StatusCode: status, Body: []byte(body)}})
}

// EnqueueError programs a failed call returning err.
func (s *StubGateway) EnqueueError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, stubResult{err: err})
}

// Execute records the request and pops the next programmed result.
// Running past the script is reported as a transport failure so tests fail
// loudly instead of hanging.
func (s *StubGateway) Execute(ctx context.Context, req gateway.Request) (*gateway.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)

	if len(s.results) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrTransport, "stub gateway: no scripted result")
	}
	next := s.results[0]
	s.results = s.results[1:]
	return next.resp, next.err
}

// Requests returns a copy of the recorded requests in call order.
func (s *StubGateway) Requests() []gateway.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gateway.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Calls returns the number of executed requests.
func (s *StubGateway) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}
