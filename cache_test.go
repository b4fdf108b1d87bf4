package extglob

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ParseReusesPatterns(t *testing.T) {
	c := NewCache(0)
	p1 := c.Parse("*.go", posix)
	p2 := c.Parse("*.go", posix)
	assert.Same(t, p1, p2)
	assert.Equal(t, 1, c.Len())

	// Different options are a different entry.
	p3 := c.Parse("*.go", posix, CaseSensitive(false))
	assert.NotSame(t, p1, p3)
	assert.Equal(t, 2, c.Len())
	assert.True(t, p3.Match("MAIN.GO"))
	assert.False(t, p1.Match("MAIN.GO"))
}

func TestCache_Clear(t *testing.T) {
	c := NewCache(0)
	p1 := c.Parse("a/**", posix)
	c.Clear()
	assert.Equal(t, 0, c.Len())

	p2 := c.Parse("a/**", posix)
	assert.NotSame(t, p1, p2)
	for _, s := range []string{"a/b", "a/b/c", "b/a", "a"} {
		assert.Equal(t, p1.Match(s), p2.Match(s), "candidate %q", s)
	}
}

func TestCache_Bounded(t *testing.T) {
	c := NewCache(2)
	a := c.Parse("a", posix)
	c.Parse("b", posix)
	c.Parse("c", posix)
	assert.Equal(t, 2, c.Len())

	// "a" was least recently used, so it was evicted.
	assert.NotSame(t, a, c.Parse("a", posix))
	assert.Equal(t, 2, c.Len())
}

func TestClearCache(t *testing.T) {
	require.True(t, IsMatch("x.go", "*.go", posix))
	require.Positive(t, defaultCache.Len())
	ClearCache()
	assert.Equal(t, 0, defaultCache.Len())
	assert.True(t, IsMatch("x.go", "*.go", posix))
}

func TestCache_Transparent(t *testing.T) {
	patterns := []string{"*.+(js|ts)", "a/!(b)/c", "**/x", "{a,b}/(c|d)+", "[!.]*"}
	candidates := []string{"a.js", "a/z/c", "x", "q/r/x", "a/cd", "b/dc", ".x", "xx"}
	for _, size := range []int{0, 1, 3} {
		c := NewCache(size)
		for _, pattern := range patterns {
			fresh := compilePattern(pattern, resolveOptions([]Option{posix}))
			for _, cand := range candidates {
				assert.Equal(t, fresh.Match(cand), c.Parse(pattern, posix).Match(cand),
					"size %d, pattern %q, candidate %q", size, pattern, cand)
			}
		}
	}
}

func TestCache_Concurrent(t *testing.T) {
	for _, size := range []int{0, 8} {
		c := NewCache(size)
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					pattern := fmt.Sprintf("f%d*", j%10)
					cand := fmt.Sprintf("f%doo", j%10)
					if !c.Parse(pattern, posix).Match(cand) {
						t.Errorf("(%q).Match(%q) = false, want true", pattern, cand)
					}
					if i == 0 && j%25 == 0 {
						c.Clear()
					}
				}
			}(i)
		}
		wg.Wait()
		assert.LessOrEqual(t, c.Len(), 10)
	}
}
