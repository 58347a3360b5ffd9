package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "raster.Render",
		Kind: KindRender,
		Err:  stderrors.New("boom"),
	}
	want := "raster.Render [render]: boom"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindSpec, "spec"},
		{KindRender, "render"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSpecErrorMatchesSentinel(t *testing.T) {
	err := InvalidSpec("pancake.BuildOutline", "Shape.Sides", 2, "must be at least 3")
	if !stderrors.Is(err, ErrInvalidSpecification) {
		t.Fatal("SpecError should match ErrInvalidSpecification")
	}
	wrapped := fmt.Errorf("building plan: %w", err)
	if !IsInvalidSpec(wrapped) {
		t.Error("IsInvalidSpec should see through wrapping")
	}
	if got := FieldOf(wrapped); got != "Shape.Sides" {
		t.Errorf("FieldOf = %q, want %q", got, "Shape.Sides")
	}
	if !strings.Contains(err.Error(), "Shape.Sides") {
		t.Errorf("error string %q should name the field", err.Error())
	}
}

func TestFieldOfUnrelatedError(t *testing.T) {
	if got := FieldOf(stderrors.New("other")); got != "" {
		t.Errorf("FieldOf = %q, want empty", got)
	}
	if IsInvalidSpec(stderrors.New("other")) {
		t.Error("unrelated error should not be an invalid spec")
	}
}

func TestWrapClassifiesSpecErrors(t *testing.T) {
	if Wrap("op", KindRender, nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
	err := Wrap("op", KindRender, InvalidSpec("op", "Border.Thickness", -1, "must not be negative"))
	if err.Kind != KindSpec {
		t.Errorf("Kind = %v, want spec", err.Kind)
	}
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "raster.Render"
	if got, want := err.Error(), "panic in raster.Render: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{onError: func(err *Error) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{Op: "test.op", Kind: KindConfig, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverInto(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	run := func() (err error) {
		defer RecoverInto("test.into", &err)
		panic("kaboom")
	}
	err := run()
	var perr *PanicError
	if !stderrors.As(err, &perr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if perr.Value != "kaboom" {
		t.Errorf("Value = %v, want kaboom", perr.Value)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesField(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	h.HandleError(Wrap("pancake.BuildPaintPlan", KindSpec,
		InvalidSpec("pancake.BuildPaintPlan", "Shadow.Opacity", 2.0, "must be within [0, 1]")))
	out := buf.String()
	for _, want := range []string{"op=pancake.BuildPaintPlan", "kind=spec", "field=Shadow.Opacity"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
