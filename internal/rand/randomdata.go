// Package rand generates random identifiers for scratch directories.
package rand

import (
	"math/rand"
	"sync"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	once sync.Once
	rgen *rand.Rand
	mu   sync.Mutex
)

func seed() {
	rgen = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec
}

// LetterString returns a random string of n characters in the [0-9]|[a-z] range
func LetterString(n int) string {
	once.Do(seed)
	buf := make([]byte, n)
	mu.Lock()
	for i := range buf {
		buf[i] = alphabet[rgen.Intn(len(alphabet))]
	}
	mu.Unlock()
	return string(buf)
}
