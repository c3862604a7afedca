package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kysee/zkcodec/utils"
	"github.com/kysee/zkcodec/zk-sprout/codec"
	"github.com/kysee/zkcodec/zk-sprout/crypto"
	"github.com/kysee/zkcodec/zk-sprout/proof"
	"github.com/kysee/zkcodec/zk-sprout/types"
)

func main() {
	cfgFile := flag.String("config", "", "codec config file (json)")
	proofHex := flag.String("proof", "", "hex encoded 576 byte proof")
	addr := flag.String("addr", "", "shielded address of an output, empty for a dummy output")
	value := flag.Uint64("value", 0, "output value")
	memo := flag.String("memo", "", "output memo")
	pksig := flag.String("pksig", "", "hex encoded joinsplit signature public key")
	encKey := flag.String("key", "", "hex encoded 32 byte key; seals the output note when set")
	epk := flag.String("epk", "", "hex encoded ephemeral public key, authenticated with the sealed note")
	flag.Parse()

	cfg := codec.DefaultConfig()
	if *cfgFile != "" {
		var err error
		if cfg, err = codec.LoadConfig(*cfgFile); err != nil {
			fail(err)
		}
	}
	logger := utils.NewLogger(cfg.LogLevel)
	c := codec.New(cfg, codec.WithLogger(logger))

	if *proofHex != "" {
		p, err := proof.ParseHex(*proofHex)
		if err != nil {
			fail(err)
		}
		printJSON(p.ToJSON())

		if _, err := proof.ToCurve(p); err != nil {
			logger.Warn().Err(err).Msg("proof points are not valid bn254 points")
		} else {
			logger.Info().Msg("proof points are on curve")
		}
		return
	}

	if *pksig != "" {
		pk, err := crypto.PksigPublicKey(mustHex(*pksig))
		if err != nil {
			fail(err)
		}
		printJSON(struct {
			Ed25519 string `json:"ed25519"`
		}{hex.EncodeToString(pk)})
		return
	}

	od, err := c.BuildOutputToAddress(*addr, *value, types.Some(*memo))
	if err != nil {
		fail(err)
	}
	out := struct {
		APk    string `json:"a_pk"`
		PkEnc  string `json:"pk_enc"`
		Value  uint64 `json:"value"`
		Memo   string `json:"memo"`
		Nonce  string `json:"nonce,omitempty"`
		Sealed string `json:"sealed,omitempty"`
	}{
		APk:   fmt.Sprintf("%x", od.APk),
		PkEnc: fmt.Sprintf("%x", od.PkEnc),
		Value: od.Value,
		Memo:  string(od.Memo),
	}

	if *encKey != "" {
		nonce, err := types.RandBytes(nil, 12)
		if err != nil {
			fail(err)
		}
		ct, _, err := c.SealOutput(od, mustHex(*encKey), nonce, mustHex(*epk))
		if err != nil {
			fail(err)
		}
		out.Nonce = hex.EncodeToString(nonce)
		out.Sealed = hex.EncodeToString(ct)
	}
	printJSON(out)
}

func mustHex(s string) []byte {
	bz, err := hex.DecodeString(s)
	if err != nil {
		fail(err)
	}
	return bz
}

func printJSON(v any) {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(bz))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
