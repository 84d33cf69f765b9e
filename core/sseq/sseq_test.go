package sseq

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcseq/core/array"
)

// randSeq draws a [ACGTN]{0,max} string.
func randSeq(r *rand.Rand, max int) []byte {
	const alphabet = "ACGTN"
	out := make([]byte, r.IntN(max+1))
	for i := range out {
		out[i] = alphabet[r.IntN(len(alphabet))]
	}
	return out
}

func newRand() *rand.Rand { return rand.New(rand.NewPCG(2018, 10)) }

func TestSort(t *testing.T) {
	raw := [][]byte{
		[]byte("ACNGTA"), []byte("TAGTCGGC"), []byte("CATC"), []byte("TGTG"),
		[]byte(""), []byte("A"), []byte("AACCATAGCCGGNATC"), []byte("GAACNAGNTGGA"),
	}
	seqs := make([]SSeq, 0, len(raw))
	for _, b := range raw {
		seqs = append(seqs, MustParse(string(b)))
	}
	slices.SortFunc(raw, bytes.Compare)
	Sort(seqs)
	for i := range raw {
		if !bytes.Equal(raw[i], seqs[i].Bytes()) {
			t.Fatalf("position %d: want %s, got %s", i, raw[i], seqs[i])
		}
	}
}

func TestSortProperty(t *testing.T) {
	r := newRand()
	for range 200 {
		n := r.IntN(11)
		raw := make([][]byte, n)
		seqs := make([]SSeq, n)
		for i := range raw {
			raw[i] = randSeq(r, MaxLen)
			seqs[i] = MustParse(string(raw[i]))
		}
		slices.SortFunc(raw, bytes.Compare)
		Sort(seqs)
		for i := range raw {
			require.Equal(t, raw[i], seqs[i].Bytes())
		}
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	r := newRand()
	for range 500 {
		b := randSeq(r, MaxLen)
		s, err := FromBytes(b)
		require.NoError(t, err)
		require.Equal(t, b, s.Bytes())
		require.Equal(t, len(b), s.Len())
	}
}

func TestInvalid(t *testing.T) {
	for _, in := range []string{"ASDF", "ag", "ACGU", "AC GT"} {
		_, err := FromString(in)
		if !assert.ErrorIs(t, err, array.ErrInvalidAlphabet, in) {
			continue
		}
		assert.Equal(t, KindInvalidAlphabet, KindOf(err))
	}
}

func TestInvalidReportsPosition(t *testing.T) {
	_, err := FromString("ACGTx")
	var ia *array.InvalidAlphabetError
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, byte('x'), ia.Byte)
	assert.Equal(t, 4, ia.Pos)
	assert.Equal(t, "an [ACGTN]* string", ia.Expected)
}

func TestTooLong(t *testing.T) {
	_, err := FromString("GGGACCGTCGGTAAAGCTACAGTGAGGGATGTAGTGATGC")
	require.ErrorIs(t, err, array.ErrCapacityExceeded)
	assert.Equal(t, KindCapacityExceeded, KindOf(err))

	_, err = FromString("ACGTACGTACGTACGTACGTACG")
	require.NoError(t, err, "exactly MaxLen bases is fine")
	_, err = FromString("ACGTACGTACGTACGTACGTACGT")
	require.ErrorIs(t, err, array.ErrCapacityExceeded)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("acgt") })
}

func TestPushEqualsConcat(t *testing.T) {
	r := newRand()
	for range 500 {
		a, b := randSeq(r, MaxLen), randSeq(r, MaxLen)
		if len(a)+len(b) > MaxLen {
			continue
		}
		s := New()
		require.NoError(t, s.Push(a))
		require.NoError(t, s.Push(b))

		joined, err := FromIter(slices.Values(append(slices.Clone(a), b...)))
		require.NoError(t, err)
		require.Equal(t, joined, s)
	}
}

func TestPushOverflowLeavesValue(t *testing.T) {
	s := MustParse("ACGTACGTACGTACGTACGT")
	err := s.Push([]byte("ACGT"))
	require.ErrorIs(t, err, array.ErrCapacityExceeded)
	assert.Equal(t, "ACGTACGTACGTACGTACGT", s.String())

	require.ErrorIs(t, s.Push([]byte("AcG")), array.ErrInvalidAlphabet)
	assert.Equal(t, 20, s.Len())
}

func TestFromIter(t *testing.T) {
	seq := MustParse("ACGT")
	a, err := FromIter(slices.Values(seq.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, seq, a)

	_, err = FromIter(slices.Values([]byte("ACGTZ")))
	require.ErrorIs(t, err, array.ErrInvalidAlphabet)
}

func TestAsBytes(t *testing.T) {
	assert.Equal(t, []byte("ACGT"), MustParse("ACGT").Bytes())
}

func TestHasN(t *testing.T) {
	assert.True(t, MustParse("ACGTN").HasN())
	assert.False(t, MustParse("ACGT").HasN())
	assert.False(t, New().HasN())
}

func TestIsHomopolymer(t *testing.T) {
	tests := []struct {
		seq  string
		want bool
	}{
		{"AAAA", true},
		{"ACGT", false},
		{"N", true},
		{"TTTTA", false},
	}
	for _, tc := range tests {
		got, err := MustParse(tc.seq).IsHomopolymer()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.seq)
	}

	_, err := New().IsHomopolymer()
	require.ErrorIs(t, err, ErrEmptySequence)
	assert.Equal(t, KindEmptySequence, KindOf(err))
}

func TestHasHomopolymerSuffix(t *testing.T) {
	assert.True(t, MustParse("ACGTAAAAA").HasHomopolymerSuffix('A', 5))
	assert.False(t, MustParse("ACGTTAAAA").HasHomopolymerSuffix('A', 5))
	assert.True(t, MustParse("CCCCC").HasHomopolymerSuffix('C', 5))
	assert.False(t, MustParse("GGGG").HasHomopolymerSuffix('G', 5))
	assert.True(t, New().HasHomopolymerSuffix('G', 0))
}

func TestHasPolyTSuffix(t *testing.T) {
	assert.True(t, MustParse("CGCGTTTTT").HasPolyTSuffix(5))
	assert.False(t, MustParse("CGCGAAAAA").HasPolyTSuffix(5))
}

func TestEncode2Bit(t *testing.T) {
	tests := []struct {
		seq  string
		want uint32
	}{
		{"AAAAA", 0},
		{"AAAAT", 3},
		{"AAACA", 4},
		{"AACAA", 16},
		{"AATA", 12},
		{"", 0},
		{"TTTTTTTTTTTTTTTT", 0xFFFFFFFF},
		{"CA", 4},
	}
	for _, tc := range tests {
		got, err := MustParse(tc.seq).Encode2Bit()
		if err != nil {
			t.Fatalf("Encode2Bit(%q): %v", tc.seq, err)
		}
		if got != tc.want {
			t.Errorf("Encode2Bit(%q) = %d, want %d", tc.seq, got, tc.want)
		}
	}
}

func TestEncode2BitErrors(t *testing.T) {
	_, err := MustParse("ACGTACGTACGTACGTA").Encode2Bit()
	require.ErrorIs(t, err, array.ErrCapacityExceeded)

	_, err = MustParse("ACNT").Encode2Bit()
	require.ErrorIs(t, err, ErrUnsupportedSymbol)
	var us *UnsupportedSymbolError
	require.ErrorAs(t, err, &us)
	assert.Equal(t, 2, us.Pos)
	assert.Equal(t, KindUnsupportedSymbol, KindOf(err))
}

func TestRevComp(t *testing.T) {
	assert.Equal(t, MustParse("ACGNT"), MustParse("ANCGT").RevComp())
	assert.Equal(t, New(), New().RevComp())

	r := newRand()
	for range 200 {
		s := MustParse(string(randSeq(r, MaxLen)))
		require.Equal(t, s, s.RevComp().RevComp())
	}
}

func TestSerdeJSON(t *testing.T) {
	seq := MustParse("AGCTAGTCAGTCAGTA")
	js, err := json.Marshal(seq)
	require.NoError(t, err)
	assert.Equal(t, `"AGCTAGTCAGTCAGTA"`, string(js))

	r := newRand()
	for range 200 {
		want := MustParse(string(randSeq(r, MaxLen)))
		enc, err := json.MarshalIndent(want, "", "  ")
		require.NoError(t, err)
		var got SSeq
		require.NoError(t, json.Unmarshal(enc, &got))
		require.Equal(t, want, got)
	}
}

func TestSerdeBinary(t *testing.T) {
	seqs := make([]SSeq, 4)
	for i := range seqs {
		seqs[i] = MustParse("AGCTAGTCAGTCAGTA")
	}
	var buf []byte
	for _, s := range seqs {
		var err error
		buf, err = s.AppendBinary(buf)
		require.NoError(t, err)
	}
	var back []SSeq
	for len(buf) > 0 {
		n := 1 + int(buf[0])
		var s SSeq
		require.NoError(t, s.UnmarshalBinary(buf[:n]))
		back = append(back, s)
		buf = buf[n:]
	}
	assert.Equal(t, seqs, back)

	r := newRand()
	for range 200 {
		want := MustParse(string(randSeq(r, MaxLen)))
		enc, err := want.MarshalBinary()
		require.NoError(t, err)
		var got SSeq
		require.NoError(t, got.UnmarshalBinary(enc))
		require.Equal(t, want, got)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindOther, KindOf(assert.AnError))
	assert.Equal(t, "capacity-exceeded", KindCapacityExceeded.String())
}
