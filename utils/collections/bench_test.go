package collections

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func BenchmarkHashSetAdd(b *testing.B) {
	for n := 1; n < 65536; n *= 4 {
		var keys []string
		for i := 0; i < n; i++ {
			keys = append(keys, uuid.New().String())
		}

		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.ReportAllocs()
			s, _ := New(DefaultCapacity, StringComparer())
			for i := 0; i < b.N; i++ {
				s.Add(keys[rand.Intn(n)])
			}
		})
	}
}

func BenchmarkHashSetContains(b *testing.B) {
	for n := 1; n < 65536; n *= 2 {
		var keys []string
		for i := 0; i < n; i++ {
			keys = append(keys, uuid.New().String())
		}

		s, _ := New(n, StringComparer())
		for i := 0; i < n/2; i++ {
			s.Add(keys[rand.Intn(n)])
		}

		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s.Contains(keys[rand.Intn(n)])
			}
		})
	}
}
