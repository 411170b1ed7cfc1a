package mocks

import (
	"context"

	"github.com/user/eventreel/pkg/ports"
)

// Encoder is a mock implementation of ports.Encoder.
type Encoder struct {
	EncodeFunc func(ctx context.Context, job ports.EncodeJob) error

	// Recorded calls for verification
	EncodeCalls []ports.EncodeJob
}

func (m *Encoder) Encode(ctx context.Context, job ports.EncodeJob) error {
	m.EncodeCalls = append(m.EncodeCalls, job)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(ctx, job)
	}
	return nil
}

var _ ports.Encoder = (*Encoder)(nil)
