package calculator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type spyLogger struct {
	mu    sync.Mutex
	calls [][]interface{}
}

func (s *spyLogger) Log(args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, args)
}

func (s *spyLogger) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func TestAdd(t *testing.T) {
	spy := &spyLogger{}
	calc := New(spy)

	assert.Equal(t, 4.0, calc.Add(2, 2), "unexpected added result")
	assert.Equal(t, 1, spy.count())
	assert.Equal(t, []interface{}{"Called add()", 2.0, 2.0}, spy.calls[0])
}

func TestSubtract(t *testing.T) {
	spy := &spyLogger{}
	calc := New(spy)

	assert.Equal(t, 0.0, calc.Subtract(2, 2), "unexpected subtracted result")
	assert.Equal(t, 1, spy.count())
	assert.Equal(t, "Called subtract()", spy.calls[0][0])
}

func TestArithmeticTable(t *testing.T) {
	tests := []struct {
		a, b, sum, diff float64
	}{
		{0, 0, 0, 0},
		{-3, 5, 2, -8},
		{1.5, 0.25, 1.75, 1.25},
		{1e9, 1e9, 2e9, 0},
	}
	for _, tt := range tests {
		spy := &spyLogger{}
		calc := New(spy)
		assert.Equal(t, tt.sum, calc.Add(tt.a, tt.b))
		assert.Equal(t, tt.diff, calc.Subtract(tt.a, tt.b))
		assert.Equal(t, 2, spy.count())
	}
}

func TestConcurrentUse(t *testing.T) {
	spy := &spyLogger{}
	calc := New(spy)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n float64) {
			defer wg.Done()
			assert.Equal(t, n+1, calc.Add(n, 1))
		}(float64(i))
	}
	wg.Wait()
	assert.Equal(t, 50, spy.count())
}
