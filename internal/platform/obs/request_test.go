package obs

import (
	"context"
	"errors"
	"testing"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	if got := RequestID(ctx); got != "abc" {
		t.Fatalf("RequestID = %q, want abc", got)
	}

	generated := RequestID(WithRequestID(context.Background(), ""))
	if len(generated) != 36 {
		t.Fatalf("generated id %q is not a uuid", generated)
	}

	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID on bare context = %q, want empty", got)
	}
}

func TestTimeAcceptsNilAndError(t *testing.T) {
	done := Time(context.Background(), "test.op")
	done(nil)

	err := errors.New("boom")
	Time(context.Background(), "test.op")(&err)
}
