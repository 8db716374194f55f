package unit

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"app/internal/validator"
)

// =====================
// テストで使う固定部品
// =====================

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", g.n)
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()

	var ve *validator.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != field {
		t.Fatalf("expected field %q, got %q (message=%q)", field, ve.Field, ve.Message)
	}
}
