// Package api converts between the generated wire types in internal/proto and
// the domain types the services work with.
package api

import (
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	pb "github.com/dmitrijs2005/zkkeeper/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// EnvelopeToPB converts an envelope for the wire. nil stays nil.
func EnvelopeToPB(e *cryptox.Envelope) *pb.Envelope {
	if e == nil {
		return nil
	}
	return &pb.Envelope{Nonce: e.Nonce, Ciphertext: e.Ciphertext, Tag: e.Tag}
}

// EnvelopeFromPB is the inverse of EnvelopeToPB.
func EnvelopeFromPB(e *pb.Envelope) *cryptox.Envelope {
	if e == nil {
		return nil
	}
	return &cryptox.Envelope{Nonce: e.GetNonce(), Ciphertext: e.GetCiphertext(), Tag: e.GetTag()}
}

// Timestamp converts t for the wire. The zero time becomes nil.
func Timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// Time is the inverse of Timestamp.
func Time(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
