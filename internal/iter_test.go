package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]string{"A": "1"})
	b := maps.All(map[string]string{"B": "2", "C": "3"})

	all := maps.Collect(IterSeq2Concat(a, b))
	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, all)

	var seen int
	for range IterSeq2Concat(a, b) {
		seen++
		break
	}
	assert.Equal(1, seen)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	all := maps.Collect(Defines(map[string]int{
		"ZERO":  0,
		"ONE":   1,
		"HWID":  0x0003,
		"BIG":   0xaaaa,
		"MINUS": -16,
	}))

	assert.Equal(map[string]string{
		"ZERO":  "0x0",
		"ONE":   "0x1",
		"HWID":  "0x3",
		"BIG":   "0xaaaa",
		"MINUS": "-0x10",
	}, all)
}

func TestDefinesOrder(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for name := range Defines(map[string]int{"C": 3, "A": 1, "B": 2}) {
		names = append(names, name)
	}
	assert.Equal([]string{"A", "B", "C"}, names)
}
