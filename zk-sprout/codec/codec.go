// Package codec builds joinsplit input and output descriptors, padding with
// dummy notes where no real note or recipient is given.
package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/kysee/zkcodec/utils"
	"github.com/kysee/zkcodec/zk-sprout/crypto"
	"github.com/kysee/zkcodec/zk-sprout/hsig"
	"github.com/kysee/zkcodec/zk-sprout/proof"
	"github.com/kysee/zkcodec/zk-sprout/types"
	"github.com/rs/zerolog"
)

var ErrInvalidTransmissionAddress = errors.New("invalid transmission address")

// Codec is safe for concurrent use when its random source and key
// generator are.
type Codec struct {
	cfg    Config
	rand   io.Reader
	keyGen crypto.KeyGenerator
	hash   utils.HashFunc
	logger *zerolog.Logger
}

type Option func(*Codec)

// WithRandom sets the random source used for dummy values.
func WithRandom(r io.Reader) Option {
	return func(c *Codec) { c.rand = r }
}

func WithKeyGenerator(kg crypto.KeyGenerator) Option {
	return func(c *Codec) { c.keyGen = kg }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Codec) { c.logger = &l }
}

func New(cfg Config, opts ...Option) *Codec {
	if cfg.DefaultMemo == "" {
		cfg.DefaultMemo = DefaultMemo
	}
	c := &Codec{
		cfg:  cfg,
		hash: utils.HashFuncByName(cfg.Hash),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hash == nil {
		c.hash = utils.DefaultHashFunc()
	}
	if c.keyGen == nil {
		c.keyGen = crypto.NewJubjubKeyGenerator(c.rand)
	}
	if c.logger == nil {
		l := utils.NewLogger(cfg.LogLevel)
		c.logger = &l
	}
	return c
}

func (c *Codec) Config() Config {
	return c.cfg
}

// DecodeProof is proof.Decode with rejected blobs logged.
func (c *Codec) DecodeProof(bz []byte) (*types.Proof, bool) {
	p, ok := proof.Decode(bz)
	if !ok {
		c.logger.Debug().Int("len", len(bz)).Msg("unparseable proof")
	}
	return p, ok
}

// HSig computes the binding hash with the configured hash function.
func (c *Codec) HSig(f hsig.BindingFields) [32]byte {
	return hsig.ComputeHSig(f, c.hash)
}

func (c *Codec) SignInput(tc *types.TransferContract) ([]byte, error) {
	return hsig.ComputeSignInput(tc, c.hash)
}

// BuildOutputMessage builds the output for the transmission address to.
// An absent or empty address, or one that is not 64 bytes, yields a dummy
// output: random address and zero value. In strict mode a non-empty address
// of the wrong length is an error instead.
func (c *Codec) BuildOutputMessage(to types.Optional[[]byte], value uint64, memo types.Optional[string]) (*types.OutputDescriptor, error) {
	addr, ok := to.Get()
	if ok && len(addr) == 0 {
		ok = false
	}
	if ok && len(addr) != types.TransmissionAddrLen && c.cfg.StrictTransmissionAddress {
		return nil, fmt.Errorf("%w: expected(%d), got(%d)", ErrInvalidTransmissionAddress, types.TransmissionAddrLen, len(addr))
	}
	if !ok || len(addr) != types.TransmissionAddrLen {
		c.logger.Debug().Bool("present", ok).Int("len", len(addr)).Msg("dummy output")

		var err error
		if addr, err = types.RandBytes(c.rand, types.TransmissionAddrLen); err != nil {
			return nil, err
		}
		value = 0
	}

	m, ok := memo.Get()
	if !ok || m == "" {
		m = c.cfg.DefaultMemo
	}

	od := &types.OutputDescriptor{
		Value: value,
		Memo:  []byte(m),
	}
	copy(od.APk[:], addr[:types.KeySize])
	copy(od.PkEnc[:], addr[types.KeySize:])
	return od, nil
}

// BuildOutputToAddress is BuildOutputMessage for a text shielded address.
// An empty addr is the dummy output.
func (c *Codec) BuildOutputToAddress(addr string, value uint64, memo types.Optional[string]) (*types.OutputDescriptor, error) {
	if addr == "" {
		return c.BuildOutputMessage(types.None[[]byte](), value, memo)
	}
	bz, err := types.DecodeAddress(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransmissionAddress, err)
	}
	return c.BuildOutputMessage(types.Some(bz), value, memo)
}

// BuildInputMessage builds the input spending note, or a dummy input with a
// fresh key, zero value and random rho and r when note is absent.
func (c *Codec) BuildInputMessage(note types.Optional[types.StoredNote]) (*types.SpendDescriptor, error) {
	if sn, ok := note.Get(); ok {
		return &types.SpendDescriptor{
			Key:  sn.AddrSk,
			Note: sn.ToNote(),
		}, nil
	}

	c.logger.Debug().Msg("dummy input")

	sk, err := c.keyGen.GenerateSpendingKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate spending key: %w", err)
	}
	apk, err := c.keyGen.DerivePublicKey(sk)
	if err != nil {
		return nil, fmt.Errorf("failed to derive address key: %w", err)
	}
	rho, err := types.RandKey(c.rand)
	if err != nil {
		return nil, err
	}
	r, err := types.RandKey(c.rand)
	if err != nil {
		return nil, err
	}

	return &types.SpendDescriptor{
		Key: sk,
		Note: types.ShieldedNote{
			Value: 0,
			APk:   apk,
			Rho:   rho,
			R:     r,
		},
	}, nil
}

// SealOutput encrypts the note plaintext of od, with fresh rho and r, into
// the c1/c2 ciphertext form of a transfer contract. epk is authenticated.
func (c *Codec) SealOutput(od *types.OutputDescriptor, key, nonce, epk []byte) ([]byte, *types.NotePlaintext, error) {
	rho, err := types.RandKey(c.rand)
	if err != nil {
		return nil, nil, err
	}
	r, err := types.RandKey(c.rand)
	if err != nil {
		return nil, nil, err
	}

	np := od.Plaintext(rho, r)
	ct, err := crypto.SealNote(key, nonce, np, epk)
	if err != nil {
		return nil, nil, err
	}
	return ct, np, nil
}
