package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}
	deadlock := &pq.Error{Code: "40P01"}

	assert.True(t, isRetryable(serialization))
	assert.True(t, isRetryable(deadlock))

	// Обертки репозиториев и usecase сохраняют причину в цепочке -
	// конфликт сериализации остается распознаваемым
	errExec := errors.New("repository: failed to execute query")
	wrapped := fmt.Errorf("%w: select: %w", errExec, serialization)
	assert.True(t, isRetryable(wrapped))

	errInternal := errors.New("usecase: internal error")
	doubleWrapped := fmt.Errorf("%w: failed to get reservations: %w", errInternal, wrapped)
	assert.True(t, isRetryable(doubleWrapped))

	assert.False(t, isRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, isRetryable(errors.New("40001")))
	assert.False(t, isRetryable(nil))
}
