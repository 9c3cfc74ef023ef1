package vector

import (
	"bytes"
	"context"
	"io"
	"math/big"

	"github.com/mr-shifu/paillier-lib/core/math/sample"
	"github.com/mr-shifu/paillier-lib/core/paillier"
	"github.com/mr-shifu/paillier-lib/lib/logging"
	"github.com/mr-shifu/paillier-lib/lib/params"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Config configures an Engine.
type Config struct {
	// Workers bounds the number of elements processed concurrently. Defaults to params.DefaultWorkers.
	Workers int
	// Logger receives debug output. Nil discards it.
	Logger *logrus.Logger
}

// Engine applies the Paillier operations element-wise over vectors.
//
// The first failing element cancels the remaining work and no partial result is returned.
type Engine struct {
	workers int
	log     *logging.Logger
}

func NewEngine(cfg Config) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = params.DefaultWorkers
	}
	log := logging.Discard()
	if cfg.Logger != nil {
		log = logging.New("vector", cfg.Logger)
	}
	return &Engine{workers: workers, log: log}
}

// Encrypt returns the element-wise encryption of v under pk.
func (e *Engine) Encrypt(ctx context.Context, rand io.Reader, pk *paillier.PublicKey, v *Vector) (*Vector, error) {
	if v.Encrypted() {
		return nil, errors.New("vector: vector is already encrypted")
	}
	rand = sample.Locked(rand)
	out := e.result(pk, v)
	err := e.run(ctx, "encrypt", v.Len(), func(i int) error {
		ct, _, err := pk.Enc(rand, v.Elements[i])
		if err != nil {
			return err
		}
		out.Elements[i] = ct.Big()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt returns the element-wise decryption of v, which must have been encrypted under kp.
func (e *Engine) Decrypt(ctx context.Context, kp *paillier.KeyPair, v *Vector) (*Vector, error) {
	pk := kp.PublicKey()
	if err := checkKey(pk, v); err != nil {
		return nil, err
	}
	out := &Vector{Shape: v.Shape, Elements: make([]*big.Int, v.Len())}
	err := e.run(ctx, "decrypt", v.Len(), func(i int) error {
		m, err := paillier.DecryptScalar(pk, kp.SecretKey(), v.Elements[i])
		if err != nil {
			return err
		}
		out.Elements[i] = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Add returns the element-wise homomorphic sum of a and b.
func (e *Engine) Add(ctx context.Context, pk *paillier.PublicKey, a, b *Vector) (*Vector, error) {
	if err := checkKey(pk, a); err != nil {
		return nil, err
	}
	if err := checkKey(pk, b); err != nil {
		return nil, err
	}
	if !a.sameShape(b) {
		return nil, errors.WithMessagef(ErrShape, "vector: cannot add shapes %v and %v", a.Shape, b.Shape)
	}
	out := e.result(pk, a)
	err := e.run(ctx, "add", a.Len(), func(i int) error {
		c, err := paillier.AddScalar(pk, a.Elements[i], b.Elements[i])
		if err != nil {
			return err
		}
		out.Elements[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddConstant adds k to every encrypted element of v.
func (e *Engine) AddConstant(ctx context.Context, pk *paillier.PublicKey, v *Vector, k *big.Int) (*Vector, error) {
	return e.apply(ctx, "add constant", pk, v, func(c *big.Int) (*big.Int, error) {
		return paillier.AddConstantScalar(pk, c, k)
	})
}

// MulConstant multiplies every encrypted element of v by k.
func (e *Engine) MulConstant(ctx context.Context, pk *paillier.PublicKey, v *Vector, k *big.Int) (*Vector, error) {
	return e.apply(ctx, "mul constant", pk, v, func(c *big.Int) (*big.Int, error) {
		return paillier.MulConstantScalar(pk, c, k)
	})
}

func (e *Engine) apply(ctx context.Context, op string, pk *paillier.PublicKey, v *Vector, f func(*big.Int) (*big.Int, error)) (*Vector, error) {
	if err := checkKey(pk, v); err != nil {
		return nil, err
	}
	out := e.result(pk, v)
	err := e.run(ctx, op, v.Len(), func(i int) error {
		c, err := f(v.Elements[i])
		if err != nil {
			return err
		}
		out.Elements[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) run(ctx context.Context, op string, n int, f func(i int) error) error {
	e.log.Debug("%s: %d elements on %d workers", op, n, e.workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(i); err != nil {
				return errors.WithMessagef(err, "vector: %s element %d", op, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.log.Err(err)
		return err
	}
	return nil
}

func (e *Engine) result(pk *paillier.PublicKey, v *Vector) *Vector {
	return &Vector{
		KeyID:    pk.KeyID(),
		Shape:    append([]int(nil), v.Shape...),
		Elements: make([]*big.Int, v.Len()),
	}
}

func checkKey(pk *paillier.PublicKey, v *Vector) error {
	if !bytes.Equal(v.KeyID, pk.KeyID()) {
		return paillier.ErrKeyMismatch
	}
	return nil
}
