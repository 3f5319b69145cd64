package common

import (
	"bytes"
	"testing"
)

func TestGenerateRandByteArray_Basic(t *testing.T) {
	const n = 24
	a := GenerateRandByteArray(n)
	b := GenerateRandByteArray(n)
	if len(a) != n || len(b) != n {
		t.Fatalf("unexpected lengths: %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Logf("warning: two GenerateRandByteArray(%d) results are identical; extremely unlikely", n)
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
	WipeByteArray(nil)
}
