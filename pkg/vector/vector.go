package vector

import (
	"bytes"
	"math"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/paillier-lib/core/hash"
	"github.com/pkg/errors"
)

var (
	ErrShape   = errors.New("vector: shape does not match element count")
	ErrCorrupt = errors.New("vector: digest mismatch")

	ErrNilElement = errors.New("vector: nil element")
)

const digestBytes = 32

// Vector is a shaped collection of integers. KeyID is set when the elements are ciphertexts
// and identifies the public key that produced them.
type Vector struct {
	KeyID    []byte
	Shape    []int
	Elements []*big.Int
}

// NewVector returns a plaintext vector with the given shape. An empty shape holds one element.
func NewVector(shape []int, elements []*big.Int) (*Vector, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, ErrShape
		}
		if d > 0 && size > math.MaxInt/d {
			return nil, errors.WithMessagef(ErrShape, "vector: shape %v overflows", shape)
		}
		size *= d
	}
	if size != len(elements) {
		return nil, errors.WithMessagef(ErrShape, "vector: shape %v holds %d elements, got %d", shape, size, len(elements))
	}
	for i, e := range elements {
		if e == nil {
			return nil, errors.WithMessagef(ErrNilElement, "vector: element %d", i)
		}
	}
	return &Vector{
		Shape:    append([]int(nil), shape...),
		Elements: elements,
	}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.Elements)
}

// Encrypted reports whether v holds ciphertexts.
func (v *Vector) Encrypted() bool {
	return len(v.KeyID) > 0
}

func (v *Vector) sameShape(other *Vector) bool {
	if len(v.Shape) != len(other.Shape) || len(v.Elements) != len(other.Elements) {
		return false
	}
	for i := range v.Shape {
		if v.Shape[i] != other.Shape[i] {
			return false
		}
	}
	return true
}

type rawVector struct {
	KeyID    []byte `cbor:",omitempty"`
	Shape    []int
	Elements [][]byte
}

type envelope struct {
	Body   []byte
	Digest []byte
}

// MarshalBinary encodes v with CBOR and appends a BLAKE3 digest of the encoding.
func (v *Vector) MarshalBinary() ([]byte, error) {
	raw := rawVector{
		KeyID:    v.KeyID,
		Shape:    v.Shape,
		Elements: make([][]byte, len(v.Elements)),
	}
	for i, e := range v.Elements {
		b, err := e.GobEncode()
		if err != nil {
			return nil, err
		}
		raw.Elements[i] = b
	}
	body, err := cbor.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(envelope{Body: body, Digest: digest(body)})
}

// UnmarshalBinary decodes data produced by MarshalBinary, returning ErrCorrupt when the
// digest does not match.
func (v *Vector) UnmarshalBinary(data []byte) error {
	var env envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return errors.WithMessage(err, "vector: failed to decode envelope")
	}
	if !bytes.Equal(env.Digest, digest(env.Body)) {
		return ErrCorrupt
	}

	var raw rawVector
	if err := cbor.Unmarshal(env.Body, &raw); err != nil {
		return errors.WithMessage(err, "vector: failed to decode body")
	}
	elements := make([]*big.Int, len(raw.Elements))
	for i, b := range raw.Elements {
		elements[i] = new(big.Int)
		if err := elements[i].GobDecode(b); err != nil {
			return errors.WithMessagef(err, "vector: failed to decode element %d", i)
		}
	}
	decoded, err := NewVector(raw.Shape, elements)
	if err != nil {
		return err
	}
	decoded.KeyID = raw.KeyID
	*v = *decoded
	return nil
}

func digest(body []byte) []byte {
	h := hash.New()
	_ = h.WriteAny(hash.BytesWithDomain{TheDomain: "Vector", Bytes: body})
	return h.Sum()[:digestBytes]
}
