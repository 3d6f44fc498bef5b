// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package replay

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// Cache remembers recently converted call sequences. Fuzzers tend to report
// the same shrunk sequence for several properties; the cache detects those
// duplicates and avoids converting them again.
type Cache struct {
	transcoder *Transcoder
	entries    *lru.Cache[common.Hash, string]
}

func NewCache(transcoder *Transcoder, size int) (*Cache, error) {
	entries, err := lru.New[common.Hash, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion cache: %w", err)
	}
	return &Cache{
		transcoder: transcoder,
		entries:    entries,
	}, nil
}

// Convert converts the given call sequence. The second result reports whether
// the same sequence, ignoring surrounding whitespace, was converted before
// and is still cached.
func (c *Cache) Convert(callSequence string) (string, bool) {
	key := sequenceHash(callSequence)
	if code, found := c.entries.Get(key); found {
		return code, true
	}
	code := c.transcoder.Convert(callSequence)
	c.entries.Add(key, code)
	return code, false
}

// Len returns the number of cached sequences.
func (c *Cache) Len() int {
	return c.entries.Len()
}

func sequenceHash(callSequence string) common.Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(strings.TrimSpace(callSequence)))
	var hash common.Hash
	hasher.Sum(hash[0:0])
	return hash
}
