package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cometbft/addrgen/crypto/pubaddr"
)

// keyFile is the JSON layout accepted by derive --file.
type keyFile struct {
	PubKeyX []int `json:"pub_key_x"`
	PubKeyY []int `json:"pub_key_y"`
}

// parseKeyFile decodes bz and returns both coordinates.
func parseKeyFile(bz []byte) (x, y []byte, err error) {
	var kf keyFile
	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&kf); err != nil {
		return nil, nil, errors.Wrap(err, "decoding key file")
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, nil, errors.New("key file must hold a single JSON object")
	}
	if kf.PubKeyX == nil || kf.PubKeyY == nil {
		return nil, nil, errors.New("key file must contain both pub_key_x and pub_key_y")
	}

	x, err = pubaddr.CoordinateFromInts("x", kf.PubKeyX)
	if err != nil {
		return nil, nil, err
	}
	y, err = pubaddr.CoordinateFromInts("y", kf.PubKeyY)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// parseCoordinate accepts either hex ("0a8b2b...", optionally 0x-prefixed)
// or a bracketed decimal list ("[10,139,43,...]").
func parseCoordinate(name, s string) ([]byte, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, errors.Errorf("pub_key_%s: unterminated list %q", name, s)
		}
		fields := strings.FieldsFunc(s[1:len(s)-1], func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		vals := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "pub_key_%s[%d]", name, i)
			}
			vals[i] = v
		}
		return pubaddr.CoordinateFromInts(name, vals)
	}

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	bz, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "pub_key_%s is neither hex nor a [..] list", name)
	}
	return bz, nil
}
