// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import (
	"errors"
	"testing"

	"github.com/crust/ogl/gl"
	"github.com/crust/ogl/internal/gltest"
)

func TestMonoCurrencyTransfer(t *testing.T) {
	d := gltest.New()
	reg := NewRegistry()

	a := NewMonoContext(d, 1, WithRegistry(reg))
	if !a.IsCurrent() {
		t.Fatal("a not current after construction")
	}

	var fired int
	a.SetDetachCallback(func() {
		fired++
		if !a.IsCurrent() {
			t.Error("a already superseded during its detach callback")
		}
	})

	b := NewMonoContext(d, 2, WithRegistry(reg))
	if fired != 1 {
		t.Fatalf("detach callback fired %d times, expected once", fired)
	}
	if a.IsCurrent() {
		t.Error("a still current after b took over")
	}
	if !b.IsCurrent() {
		t.Error("b not current after construction")
	}

	// Switching back supersedes b, not a again.
	var bFired int
	b.SetDetachCallback(func() { bFired++ })
	if err := a.MakeCurrent(); err != nil {
		t.Fatalf("MakeCurrent: %v", err)
	}
	if fired != 1 || bFired != 1 {
		t.Errorf("callbacks fired a=%d b=%d, expected 1 and 1", fired, bFired)
	}
	if !a.IsCurrent() || b.IsCurrent() {
		t.Error("currency did not transfer back to a")
	}
}

func TestMonoMakeCurrentWhenAlreadyCurrent(t *testing.T) {
	d := gltest.New()
	a := NewMonoContext(d, 1, WithRegistry(NewRegistry()))
	a.SetDetachCallback(func() {
		t.Error("detach callback fired without a supersession")
	})
	for i := 0; i < 2; i++ {
		if err := a.MakeCurrent(); err != nil {
			t.Fatalf("MakeCurrent: %v", err)
		}
	}
	if !a.IsCurrent() {
		t.Error("a lost currency")
	}
}

func TestMonoReleaseEmptiesSlot(t *testing.T) {
	d := gltest.New()
	reg := NewRegistry()

	a := NewMonoContext(d, 1, WithRegistry(reg))
	b := NewMonoContext(d, 2, WithRegistry(reg))
	if err := a.MakeCurrent(); err != nil {
		t.Fatalf("MakeCurrent: %v", err)
	}

	a.Release()
	if a.IsCurrent() {
		t.Error("a current after release")
	}
	if b.IsCurrent() {
		t.Error("b became current without MakeCurrent")
	}
	if err := b.MakeCurrent(); err != nil {
		t.Fatalf("MakeCurrent: %v", err)
	}
	if !b.IsCurrent() {
		t.Error("b not current after MakeCurrent")
	}
}

func TestMonoReleaseWhileNotCurrent(t *testing.T) {
	d := gltest.New()
	reg := NewRegistry()

	a := NewMonoContext(d, 1, WithRegistry(reg))
	b := NewMonoContext(d, 2, WithRegistry(reg))

	a.Release()
	if !b.IsCurrent() {
		t.Error("releasing a non-current context disturbed the current one")
	}
}

func TestReleasedContext(t *testing.T) {
	d := gltest.New()
	a := NewMonoContext(d, 1, WithRegistry(NewRegistry()))
	a.Release()

	if err := a.MakeCurrent(); !errors.Is(err, ErrReleased) {
		t.Errorf("MakeCurrent after release: %v, expected ErrReleased", err)
	}
	if a.IsCurrent() {
		t.Error("released context reports current")
	}
	if err := a.Clear(); !errors.Is(err, ErrInactiveContext) {
		t.Errorf("Clear after release: %v, expected ErrInactiveContext", err)
	}
	a.Release() // idempotent
}

func TestClearUsesStoredMask(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	call, ok := d.LastCall("Clear")
	if !ok {
		t.Fatal("no Clear issued")
	}
	if mask := call.Args[0].(gl.Enum); mask != gl.COLOR_BUFFER_BIT {
		t.Errorf("default clear mask 0x%x, expected COLOR_BUFFER_BIT", uint(mask))
	}

	c.SetClearMask(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if got := c.ClearMask(); got != gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT {
		t.Errorf("ClearMask() = 0x%x after SetClearMask", uint(got))
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	call, _ = d.LastCall("Clear")
	if mask := call.Args[0].(gl.Enum); mask != gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT {
		t.Errorf("clear mask 0x%x, expected color|depth", uint(mask))
	}

	if err := c.ClearBuffers(gl.STENCIL_BUFFER_BIT); err != nil {
		t.Fatalf("ClearBuffers: %v", err)
	}
	call, _ = d.LastCall("Clear")
	if mask := call.Args[0].(gl.Enum); mask != gl.STENCIL_BUFFER_BIT {
		t.Errorf("explicit clear mask 0x%x, expected STENCIL_BUFFER_BIT", uint(mask))
	}
}

func TestClearMaskOption(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()),
		WithClearMask(gl.COLOR_BUFFER_BIT|gl.STENCIL_BUFFER_BIT))
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	call, _ := d.LastCall("Clear")
	if mask := call.Args[0].(gl.Enum); mask != gl.COLOR_BUFFER_BIT|gl.STENCIL_BUFFER_BIT {
		t.Errorf("clear mask 0x%x, expected color|stencil", uint(mask))
	}
}

func TestClearColorRoundTrip(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	want := Color{R: 0.125, G: 0.25, B: 0.5, A: 1}
	if err := c.ClearColor(want); err != nil {
		t.Fatalf("ClearColor: %v", err)
	}

	call, ok := d.LastCall("ClearColor")
	if !ok {
		t.Fatal("no ClearColor issued")
	}
	got := [4]float32{
		call.Args[0].(float32),
		call.Args[1].(float32),
		call.Args[2].(float32),
		call.Args[3].(float32),
	}
	if got != want.Float32() {
		t.Errorf("driver received %v, expected %v", got, want.Float32())
	}

	back, err := c.GetColor(gl.COLOR_CLEAR_VALUE)
	if err != nil {
		t.Fatalf("GetColor: %v", err)
	}
	if back != want {
		t.Errorf("COLOR_CLEAR_VALUE read back %+v, expected %+v", back, want)
	}

	// The clear that follows is issued against the color just set.
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	calls := d.Calls("")
	cc, cl := callIndex(calls, "ClearColor"), callIndex(calls, "Clear")
	if cc < 0 || cl < 0 || cc > cl {
		t.Errorf("call sequence ClearColor=%d Clear=%d, expected ClearColor first", cc, cl)
	}
}

func TestClearRequiresCurrency(t *testing.T) {
	d := gltest.New()
	reg := NewRegistry()
	a := NewMonoContext(d, 1, WithRegistry(reg))
	NewMonoContext(d, 2, WithRegistry(reg)) // supersedes a

	if err := a.Clear(); !errors.Is(err, ErrInactiveContext) {
		t.Errorf("Clear on inactive context: %v", err)
	}
	if err := a.ClearBuffers(gl.COLOR_BUFFER_BIT); !errors.Is(err, ErrInactiveContext) {
		t.Errorf("ClearBuffers on inactive context: %v", err)
	}
	if err := a.ClearColor(Color{A: 1}); !errors.Is(err, ErrInactiveContext) {
		t.Errorf("ClearColor on inactive context: %v", err)
	}
	if n := d.CallCount("Clear") + d.CallCount("ClearColor"); n != 0 {
		t.Errorf("%d driver calls issued for an inactive context", n)
	}
}

func TestClearDriverError(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	d.FailNext(gl.INVALID_VALUE)
	err := c.Clear()
	var glErr gl.Error
	if !errors.As(err, &glErr) {
		t.Fatalf("Clear with a raised driver flag: %v, expected a gl.Error", err)
	}
	if gl.Enum(glErr) != gl.INVALID_VALUE {
		t.Errorf("driver error 0x%x, expected INVALID_VALUE", uint(glErr))
	}
}

func TestDefaultRegistry(t *testing.T) {
	d := gltest.New()
	a := NewMonoContext(d, 1)
	defer a.Release()
	if !a.IsCurrent() {
		t.Fatal("a not current in the default registry")
	}

	// A context in a private registry tracks currency independently.
	b := NewMonoContext(d, 2, WithRegistry(NewRegistry()))
	defer b.Release()
	if !a.IsCurrent() {
		t.Error("a displaced by a context in another registry")
	}
	if !b.IsCurrent() {
		t.Error("b not current in its own registry")
	}
}

func TestContextAccessors(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 42, WithRegistry(NewRegistry()))
	if got := c.NativeHandle(); got != 42 {
		t.Errorf("NativeHandle() = %d, expected 42", got)
	}
	if c.Functions() != gl.Functions(d) {
		t.Error("Functions() does not return the construction driver")
	}
}
