package reader

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/arloliu/vectree/format"
	"github.com/arloliu/vectree/token"
)

// benchDocument builds a document shaped like a stored embedding record.
func benchDocument(dim int) []byte {
	rng := rand.New(rand.NewSource(42))

	var sb strings.Builder
	sb.WriteString(`{"_id":"doc-000123","title":"benchmark record","tags":["a","b","c"],"score":0.93,"$vector":[`)
	for i := range dim {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(rng.Float64()*2-1, 'f', 8, 32))
	}
	sb.WriteString(`]}`)

	return []byte(sb.String())
}

func BenchmarkReadTree(b *testing.B) {
	modes := []format.VectorMode{
		format.VectorGeneric,
		format.VectorNativeFloats,
		format.VectorListOfNumbers,
		format.VectorListOfStrings,
		format.VectorSkip,
	}

	for _, dim := range []int{384, 1536} {
		doc := benchDocument(dim)

		for _, mode := range modes {
			b.Run(fmt.Sprintf("dim_%d/%s", dim, mode), func(b *testing.B) {
				r, err := New(WithVectorMode(mode))
				if err != nil {
					b.Fatal(err)
				}

				b.ReportAllocs()
				b.SetBytes(int64(len(doc)))
				for b.Loop() {
					if _, err := r.ReadTree(token.NewJSONCursorBytes(doc)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}

		b.Run(fmt.Sprintf("dim_%d/GoJSONAny", dim), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(doc)))
			for b.Loop() {
				var v any
				if err := gojson.Unmarshal(doc, &v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
