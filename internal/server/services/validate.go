package services

import (
	"fmt"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/google/uuid"
)

// validator collects the first structural problem found in a request.
// Every check depends only on the request itself, so the resulting error is
// safe to return verbatim.
type validator struct {
	err error
}

func (v *validator) fail(field, reason string) {
	if v.err == nil {
		v.err = common.NewValidationError(field, reason)
	}
}

func (v *validator) accountID(id string) {
	if _, err := uuid.Parse(id); err != nil {
		v.fail("account_id", "must be a uuid")
	}
}

func (v *validator) fixed(field string, b []byte, size int) {
	if len(b) != size {
		v.fail(field, fmt.Sprintf("must be %d bytes", size))
	}
}

func (v *validator) verifier(field string, b []byte) {
	v.fixed(field, b, cryptox.VerifierSize)
}

func (v *validator) salt(field string, b []byte) {
	v.fixed(field, b, cryptox.SaltSize)
}

func (v *validator) kdfMode(m cryptox.KDFMode) {
	if !m.Valid() {
		v.fail("kdf_mode", fmt.Sprintf("unknown mode %q", m))
	}
}

func (v *validator) wrap(field string, env *cryptox.Envelope) {
	if v.err == nil {
		v.err = env.Validate(field, cryptox.WrappedKeySize)
	}
}

func (v *validator) optionalWrap(field string, env *cryptox.Envelope) {
	if env != nil {
		v.wrap(field, env)
	}
}

func (v *validator) schema(version int, supported func(int) bool) {
	if !supported(version) {
		v.fail("schema_version", fmt.Sprintf("unsupported version %d", version))
	}
}
