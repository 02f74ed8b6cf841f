package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	p := MakePair("a", 1)
	assert.Equal(t, "a", Fst(p))
	assert.Equal(t, 1, Snd(p))
}

func TestZipUnzip(t *testing.T) {
	ps := Zip2([]string{"a", "b", "c"}, []int{1, 2})
	assert.Equal(t, []Pair[string, int]{{"a", 1}, {"b", 2}}, ps)

	as, bs := Unzip2(ps)
	assert.Equal(t, []string{"a", "b"}, as)
	assert.Equal(t, []int{1, 2}, bs)
}
