package evalpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_GetRelease(t *testing.T) {
	t.Parallel()

	p := New[int]()

	buf := p.Get()
	require.NotNil(t, buf)
	assert.Zero(t, buf.Len())
	assert.Zero(t, p.Idle())

	buf.Append(1, 2, 3)
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, []int{1, 2, 3}, buf.Items())

	buf.Release()
	assert.Equal(t, 1, p.Idle())
}

func TestPool_ReusesReleasedBuffer(t *testing.T) {
	t.Parallel()

	p := New[string]()

	first := p.Get()
	first.Append("a")
	first.Release()

	second := p.Get()
	assert.Same(t, first, second)
	assert.Zero(t, second.Len())
	assert.Zero(t, p.Idle())
}

func TestPool_AllocatesWhenEmpty(t *testing.T) {
	t.Parallel()

	p := New[int]()

	first := p.Get()
	second := p.Get()

	assert.NotSame(t, first, second)

	first.Release()
	second.Release()
	assert.Equal(t, 2, p.Idle())
}

func TestBuffer_ReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	p := New[int]()

	buf := p.Get()
	buf.Release()
	buf.Release()

	assert.Equal(t, 1, p.Idle())
}

func TestBuffer_ReleaseZeroesItems(t *testing.T) {
	t.Parallel()

	p := New[*int]()

	value := 7
	buf := p.Get()
	buf.Append(&value)

	backing := buf.Items()[:1]
	buf.Release()

	// Pointers are cleared so released buffers do not pin referents.
	assert.Nil(t, backing[0])
}

func TestPool_Options(t *testing.T) {
	t.Parallel()

	t.Run("buffer capacity", func(t *testing.T) {
		t.Parallel()

		p := New[int](WithBufferCap(4))

		buf := p.Get()
		assert.Equal(t, 4, cap(buf.Items()))
	})

	t.Run("non-positive capacity keeps the default", func(t *testing.T) {
		t.Parallel()

		p := New[int](WithBufferCap(0))

		buf := p.Get()
		assert.Equal(t, defaultBufferCap, cap(buf.Items()))
	})

	t.Run("named pool", func(t *testing.T) {
		t.Parallel()

		p := New[int](WithName("combat-ai"))
		assert.Equal(t, "combat-ai", p.name)
	})
}

func TestBuffer_DeferredRelease(t *testing.T) {
	t.Parallel()

	p := New[int]()

	func() {
		buf := p.Get()
		defer buf.Release()

		buf.Append(1)
		buf.Release()
	}()

	assert.Equal(t, 1, p.Idle())
}
