package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"unclassified defaults to transient", cause, KindTransient},
		{"authentication", Authentication("verify", cause), KindAuthentication},
		{"validation", Validation("decode", cause), KindValidation},
		{"logic", Logic("charge", cause), KindLogic},
		{"wrapped keeps kind", fmt.Errorf("outer: %w", Validation("decode", cause)), KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Authentication("verify", cause)))
	assert.Equal(t, http.StatusOK, HTTPStatus(Validation("decode", cause)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Transient("db", cause)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Logic("charge", cause)))
}

func TestClassify(t *testing.T) {
	notFound := fmt.Errorf("failed to enrich charge: %w", ErrTransactionNotFound)

	err := Classify("charge.succeeded", notFound)
	assert.True(t, Is(err, KindLogic))
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	err = Classify("insert", errors.New("connection refused"))
	assert.True(t, Is(err, KindTransient))

	already := Validation("decode", errors.New("bad json"))
	assert.Same(t, already, Classify("outer", already))

	assert.NoError(t, Classify("noop", nil))
}

func TestError_Message(t *testing.T) {
	err := Logic("charge.succeeded", ErrTransactionNotFound)
	assert.Equal(t, "logic: charge.succeeded: transaction not found", err.Error())

	err = &Error{Kind: KindValidation, Err: errors.New("missing contact")}
	assert.Equal(t, "validation: missing contact", err.Error())
}
