package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

func TestClassifyRunError(t *testing.T) {
	expired, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-expired.Done()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want error
	}{
		{
			name: "context deadline",
			ctx:  context.Background(),
			err:  fmt.Errorf("query: %w", context.DeadlineExceeded),
			want: usecase.ErrQueryTimeout,
		},
		{
			name: "expired context with driver error",
			ctx:  expired,
			err:  errors.New("driver: bad connection"),
			want: usecase.ErrQueryTimeout,
		},
		{
			name: "statement canceled by server",
			ctx:  context.Background(),
			err:  &pq.Error{Code: pqQueryCanceled, Message: "canceling statement due to statement timeout"},
			want: usecase.ErrQueryTimeout,
		},
		{
			name: "other database error",
			ctx:  context.Background(),
			err:  &pq.Error{Code: "42P01", Message: "relation does not exist"},
			want: usecase.ErrExecution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyRunError(tt.ctx, tt.err)
			if !errors.Is(got, tt.want) {
				t.Fatalf("classifyRunError() = %v, want %v", got, tt.want)
			}
		})
	}
}
