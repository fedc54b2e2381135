package subject

import (
	"github.com/stretchr/testify/assert"
	"strconv"
	"testing"
)

func TestMapper_Receive(t *testing.T) {
	m := NewMapper(strconv.Itoa)
	got := collect[string](m)
	m.Receive(1)
	m.Receive(22)
	assert.Equal(t, []string{"1", "22"}, *got)
	assert.Equal(t, 1, m.Len())
}

func TestMapper_Nil(t *testing.T) {
	assert.Panics(t, func() {
		NewMapper[int, int](nil)
	})
}

func TestFilter_Receive(t *testing.T) {
	f := NewFilter(func(val int) bool {
		return val%2 == 0
	})
	got := collect[int](f)
	for i := 0; i < 6; i++ {
		f.Receive(i)
	}
	assert.Equal(t, []int{0, 2, 4}, *got)
}

func TestFilter_Nil(t *testing.T) {
	assert.Panics(t, func() {
		NewFilter[int](nil)
	})
}

func TestMapper_ClosePropagates(t *testing.T) {
	src := NewSource[int]()
	m := NewMapper(func(val int) int { return val * 2 })
	f := NewFilter(func(val int) bool { return val > 2 })
	recv := NewReceiver[int]()
	src.Listen(Wrap[int](m))
	m.Listen(Wrap[int](f))
	f.Listen(Wrap[int](recv))

	src.Send(1)
	src.Send(2)
	src.Close()

	val, ok := recv.Next()
	assert.True(t, ok)
	assert.Equal(t, 4, val)
	_, ok = recv.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, f.Len())
}
