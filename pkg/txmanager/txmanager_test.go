package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure_RawDriverError(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
}

func TestIsSerializationFailure_SurvivesChainWrapping(t *testing.T) {
	repoStyle := fmt.Errorf("exec query: ListDetails - execute query: %w", &pq.Error{Code: "40001"})
	assert.True(t, IsSerializationFailure(repoStyle))

	commitStyle := fmt.Errorf("%w: commit: %w", ErrTransaction, &pq.Error{Code: "40001"})
	assert.True(t, IsSerializationFailure(commitStyle))
}

func TestIsSerializationFailure_MessageOnlyWrappingHidesIt(t *testing.T) {
	err := fmt.Errorf("exec query: Create - execute insert: %v", &pq.Error{Code: "40001"})
	assert.False(t, IsSerializationFailure(err))
}

func TestIsSerializationFailure_OtherErrors(t *testing.T) {
	assert.False(t, IsSerializationFailure(nil))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23P01"}))
	assert.False(t, IsSerializationFailure(errors.New("connection reset")))
}
