// Package textdecode turns a lazy stream of raw byte batches into a lazy
// stream of decoded rune batches, stripping a leading UTF-8 byte-order mark
// and validating the encoding as it goes. It is the "text decoder" external
// collaborator described in the core's upstream-input boundary: everything
// below it deals in bytes, everything above it in code points.
package textdecode

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const runeBatchSize = 4096

// Decode reads batches of raw bytes from in, decodes them as BOM-aware UTF-8,
// and writes batches of decoded runes to the returned channel. A malformed
// byte sequence is replaced with the Unicode replacement character by the
// underlying decoder rather than treated as fatal here: encoding errors are
// not part of the core's diagnostic surface, only lexical and syntactic ones
// are.
//
// Decode closes its output channel once in is exhausted or once writing
// input into the decoder fails irrecoverably.
func Decode(in <-chan []byte) <-chan []rune {
	out := make(chan []rune)

	pr, pw := io.Pipe()
	go func() {
		var err error
		for chunk := range in {
			if _, werr := pw.Write(chunk); werr != nil {
				err = werr
				break
			}
		}
		pw.CloseWithError(err)
	}()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	tr := transform.NewReader(pr, decoder)
	r := bufio.NewReader(tr)

	go func() {
		defer close(out)
		batch := make([]rune, 0, runeBatchSize)
		for {
			ch, _, err := r.ReadRune()
			if err != nil {
				if len(batch) > 0 {
					out <- batch
				}
				return
			}
			batch = append(batch, ch)
			if len(batch) == runeBatchSize {
				out <- batch
				batch = make([]rune, 0, runeBatchSize)
			}
		}
	}()

	return out
}
