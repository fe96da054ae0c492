package lexer_test

import (
	"strings"
	"testing"

	"github.com/agenthands/ctok/pkg/compiler/lexer"
)

func BenchmarkTokenize(b *testing.B) {
	src := strings.Repeat(program, 64)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lexer.Tokenize(src)
	}
}

func BenchmarkScannerNext(b *testing.B) {
	src := strings.Repeat(program, 64)
	s := lexer.NewScanner(src)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset(src)
		for s.Next().Kind != lexer.KindEOF {
		}
	}
}
