package fuel

import (
	"errors"
	"math"
	"testing"

	"github.com/danieljhkim/missionfuel/internal/gravity"
)

func newTestCalculator() *Calculator {
	return NewCalculator(gravity.New(nil))
}

func TestCalculate(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name   string
		mass   float64
		action Action
		body   string
		want   int64
	}{
		{"apollo landing on earth", 28801, Land, "earth", 13447},
		{"launch from earth", 1000, Launch, "earth", 517},
		{"land on mars without carry", 1000, Land, "mars", 80},
		{"launch from moon", 1000, Launch, "moon", 35},
		{"negative base is not clamped", 1, Launch, "earth", -33},
		{"negative landing base", 1, Land, "moon", -42},
		{"zero mass", 0, Launch, "earth", -33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calculate(tt.mass, tt.action, tt.body)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Calculate(%v, %s, %s) = %d, want %d", tt.mass, tt.action, tt.body, got, tt.want)
			}
		})
	}
}

func TestBreakdown(t *testing.T) {
	calc := newTestCalculator()

	b, err := calc.Breakdown(28801, Land, "earth")
	if err != nil {
		t.Fatalf("Breakdown() error = %v", err)
	}
	// 9278 + 2960 + 915 + 254 + 40
	if b.Base != 9278 {
		t.Errorf("Base = %d, want 9278", b.Base)
	}
	if b.Carry != 4169 {
		t.Errorf("Carry = %d, want 4169", b.Carry)
	}
	if b.Total() != 13447 {
		t.Errorf("Total() = %d, want 13447", b.Total())
	}
}

func TestCalculate_UnsupportedPlanet(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Calculate(1000, Launch, "pluto")
	if !errors.Is(err, ErrUnsupportedPlanet) {
		t.Fatalf("expected ErrUnsupportedPlanet, got %v", err)
	}

	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if fe.Kind != UnsupportedPlanet || fe.Token != "pluto" {
		t.Errorf("got %+v, want UnsupportedPlanet(pluto)", fe)
	}
	if err.Error() != "Unsupported planet: pluto" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCalculate_UnsupportedAction(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Calculate(1000, "teleport", "earth")
	if !errors.Is(err, ErrUnsupportedAction) {
		t.Fatalf("expected ErrUnsupportedAction, got %v", err)
	}
	if errors.Is(err, ErrUnsupportedPlanet) {
		t.Error("action error must not match ErrUnsupportedPlanet")
	}
	if err.Error() != "Unsupported action: teleport" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCalculate_PlanetCheckedBeforeAction(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Calculate(1000, "teleport", "pluto")
	if !errors.Is(err, ErrUnsupportedPlanet) {
		t.Fatalf("expected planet error first, got %v", err)
	}
}

func TestCalculate_CustomGravity(t *testing.T) {
	calc := NewCalculator(gravity.New(map[string]float64{"europa": 1.315}))

	got, err := calc.Calculate(1000, Land, "europa")
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Calculate(1000, land, europa) = %d, want 1", got)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	calc := newTestCalculator()

	first, err := calc.Calculate(75432, Launch, "mars")
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		got, _ := calc.Calculate(75432, Launch, "mars")
		if got != first {
			t.Fatalf("run %d: got %d, want %d", i, got, first)
		}
	}
}

func TestCarry_StopsAtFirstNonPositive(t *testing.T) {
	// A non-positive starting amount must not produce any carry.
	if got, err := carry(launchFuel, -33, 9.807); err != nil || got != 0 {
		t.Errorf("carry(-33) = %d, %v; want 0, nil", got, err)
	}
	if got, err := carry(landFuel, 0, 9.807); err != nil || got != 0 {
		t.Errorf("carry(0) = %d, %v; want 0, nil", got, err)
	}
}

func TestCalculate_Overflow(t *testing.T) {
	tests := []struct {
		name    string
		gravity map[string]float64
		mass    float64
		action  Action
		body    string
	}{
		{"mass beyond int64", nil, 1e20, Launch, "earth"},
		{"huge mass", nil, 1e300, Land, "moon"},
		// 100 * 0.042 > 1, so every carry increment is larger than the last
		{"carry never converges", map[string]float64{"jupiter-ish": 100}, 1000, Launch, "jupiter-ish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator(gravity.New(tt.gravity))
			got, err := calc.Calculate(tt.mass, tt.action, tt.body)
			if !errors.Is(err, ErrFuelOverflow) {
				t.Fatalf("Calculate() = %d, %v; want ErrFuelOverflow", got, err)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	if got, err := Add(40, 2); err != nil || got != 42 {
		t.Errorf("Add(40, 2) = %d, %v", got, err)
	}
	if got, err := Add(-33, -42); err != nil || got != -75 {
		t.Errorf("Add(-33, -42) = %d, %v", got, err)
	}
	if _, err := Add(math.MaxInt64, 1); !errors.Is(err, ErrFuelOverflow) {
		t.Errorf("Add(MaxInt64, 1) error = %v, want ErrFuelOverflow", err)
	}
	if _, err := Add(math.MinInt64, -1); !errors.Is(err, ErrFuelOverflow) {
		t.Errorf("Add(MinInt64, -1) error = %v, want ErrFuelOverflow", err)
	}
}
