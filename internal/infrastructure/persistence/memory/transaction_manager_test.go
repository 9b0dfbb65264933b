package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionManager_WithTransaction(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(ctx context.Context) error
		wantError bool
	}{
		{
			name:      "正常系: 関数が成功",
			fn:        func(ctx context.Context) error { return nil },
			wantError: false,
		},
		{
			name:      "異常系: 関数のエラーをそのまま返す",
			fn:        func(ctx context.Context) error { return errors.New("boom") },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTransactionManager().WithTransaction(context.Background(), tt.fn)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionManager_Nested(t *testing.T) {
	tm := NewTransactionManager()
	called := false

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return tm.WithTransaction(ctx, func(ctx context.Context) error {
			called = true
			return nil
		})
	})

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestTransactionManager_Serializes(t *testing.T) {
	tm := NewTransactionManager()
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	secondEntered := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			close(firstEntered)
			<-releaseFirst
			return nil
		})
	}()
	<-firstEntered

	go func() {
		defer wg.Done()
		_ = tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			close(secondEntered)
			return nil
		})
	}()

	select {
	case <-secondEntered:
		t.Fatal("second transaction started while the first was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(releaseFirst)
	select {
	case <-secondEntered:
	case <-time.After(time.Second):
		t.Fatal("second transaction did not start after the first finished")
	}
	wg.Wait()
}
