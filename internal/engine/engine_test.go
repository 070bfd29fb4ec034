package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/danieljhkim/missionfuel/internal/ctxlog"
	"github.com/danieljhkim/missionfuel/internal/fuel"
	"github.com/danieljhkim/missionfuel/internal/gravity"
	"github.com/danieljhkim/missionfuel/internal/hash"
	"github.com/danieljhkim/missionfuel/internal/planner"
)

var apollo11 = []string{"launch:earth", "land:moon", "launch:moon", "land:earth"}

func newTestEngine(t *testing.T) (*Engine, *hash.FakeHasher) {
	t.Helper()
	hasher := hash.NewFakeHasher()
	return New(gravity.New(nil), hasher), hasher
}

func TestEngine_Mission(t *testing.T) {
	eng, hasher := newTestEngine(t)
	hasher.SetHash("apollo", append([]string{"28801"}, apollo11...)...)

	result, err := eng.Mission(context.Background(), &MissionRequest{Mass: 28801, Steps: apollo11})
	if err != nil {
		t.Fatalf("Mission() error = %v", err)
	}

	if result.TotalFuel != 51898 {
		t.Errorf("TotalFuel = %d, want 51898", result.TotalFuel)
	}
	if len(result.Legs) != 4 {
		t.Fatalf("expected 4 legs, got %d", len(result.Legs))
	}
	if result.Legs[3].Fuel != 13447 {
		t.Errorf("last leg fuel = %d, want 13447", result.Legs[3].Fuel)
	}
	if result.Fingerprint != "apollo" {
		t.Errorf("Fingerprint = %q, want apollo", result.Fingerprint)
	}
	if strings.Join(result.Steps, " ") != strings.Join(apollo11, " ") {
		t.Errorf("Steps = %v", result.Steps)
	}
}

func TestEngine_Mission_Idempotent(t *testing.T) {
	eng := New(gravity.New(nil), hash.NewSHA256Hasher())
	req := &MissionRequest{Mass: 14606, Steps: []string{"launch:earth", "land:mars", "launch:mars", "land:earth"}}

	first, err := eng.Mission(context.Background(), req)
	if err != nil {
		t.Fatalf("Mission() error = %v", err)
	}
	second, err := eng.Mission(context.Background(), req)
	if err != nil {
		t.Fatalf("Mission() error = %v", err)
	}

	if first.TotalFuel != 33388 || second.TotalFuel != 33388 {
		t.Errorf("TotalFuel = %d then %d, want 33388", first.TotalFuel, second.TotalFuel)
	}
	if first.Fingerprint != second.Fingerprint {
		t.Errorf("fingerprint changed: %s then %s", first.Fingerprint, second.Fingerprint)
	}
}

func TestEngine_Mission_Errors(t *testing.T) {
	eng, _ := newTestEngine(t)

	tests := []struct {
		name    string
		req     *MissionRequest
		wantIs  error
		wantMsg string
	}{
		{
			name:   "negative mass",
			req:    &MissionRequest{Mass: -1, Steps: apollo11},
			wantIs: ErrInvalidMass,
		},
		{
			name:   "NaN mass",
			req:    &MissionRequest{Mass: math.NaN(), Steps: apollo11},
			wantIs: ErrInvalidMass,
		},
		{
			name:   "mass above limit",
			req:    &MissionRequest{Mass: 1e20, Steps: []string{"launch:earth", "land:moon"}},
			wantIs: ErrInvalidMass,
		},
		{
			name:   "huge mass",
			req:    &MissionRequest{Mass: 1e300, Steps: apollo11},
			wantIs: ErrInvalidMass,
		},
		{
			name:   "malformed step",
			req:    &MissionRequest{Mass: 1000, Steps: []string{"launch-earth"}},
			wantIs: planner.ErrInvalidStep,
		},
		{
			name:    "unsupported planet",
			req:     &MissionRequest{Mass: 1000, Steps: []string{"launch:earth", "land:pluto"}},
			wantIs:  ErrValidation,
			wantMsg: "Unsupported planet: pluto",
		},
		{
			name:    "unsupported action",
			req:     &MissionRequest{Mass: 1000, Steps: []string{"teleport:earth"}},
			wantIs:  fuel.ErrUnsupportedAction,
			wantMsg: "Unsupported action: teleport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Mission(context.Background(), tt.req)
			if !errors.Is(err, tt.wantIs) {
				t.Fatalf("Mission() error = %v, want %v", err, tt.wantIs)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestEngine_Fuel(t *testing.T) {
	eng, _ := newTestEngine(t)

	result, err := eng.Fuel(context.Background(), &FuelRequest{Mass: 28801, Action: "land", Body: "earth"})
	if err != nil {
		t.Fatalf("Fuel() error = %v", err)
	}
	if result.Fuel != 13447 || result.Base != 9278 || result.Carry != 4169 {
		t.Errorf("Fuel() = %+v", result)
	}

	_, err = eng.Fuel(context.Background(), &FuelRequest{Mass: 1000, Action: "launch", Body: "pluto"})
	if !errors.Is(err, ErrValidation) || !errors.Is(err, fuel.ErrUnsupportedPlanet) {
		t.Errorf("expected validation error for pluto, got %v", err)
	}
}

func TestEngine_Fuel_MassLimit(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.Fuel(context.Background(), &FuelRequest{Mass: 1e20, Action: "launch", Body: "earth"})
	if !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("Fuel(1e20) error = %v, want ErrInvalidMass", err)
	}

	result, err := eng.Fuel(context.Background(), &FuelRequest{Mass: MaxMass, Action: "launch", Body: "earth"})
	if err != nil {
		t.Fatalf("Fuel(MaxMass) error = %v", err)
	}
	if result.Fuel <= 0 {
		t.Errorf("Fuel(MaxMass) = %d, want a positive amount", result.Fuel)
	}

	res, err := eng.Mission(context.Background(), &MissionRequest{Mass: MaxMass, Steps: apollo11})
	if err != nil {
		t.Fatalf("Mission(MaxMass) error = %v", err)
	}
	if res.TotalFuel <= 0 {
		t.Errorf("Mission(MaxMass) total = %d, want a positive amount", res.TotalFuel)
	}
}

func TestEngine_Fuel_Overflow(t *testing.T) {
	eng := New(gravity.New(map[string]float64{"dense": 100}), hash.NewFakeHasher())

	_, err := eng.Fuel(context.Background(), &FuelRequest{Mass: 1000, Action: "launch", Body: "dense"})
	if !errors.Is(err, fuel.ErrFuelOverflow) || !errors.Is(err, ErrValidation) {
		t.Fatalf("Fuel() error = %v, want ErrFuelOverflow marked as ErrValidation", err)
	}
}

func TestEngine_Validate(t *testing.T) {
	eng, _ := newTestEngine(t)

	result, err := eng.Validate(context.Background(), &ValidateRequest{Steps: apollo11})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !result.Valid || result.Steps != 4 {
		t.Errorf("Validate() = %+v", result)
	}

	_, err = eng.Validate(context.Background(), &ValidateRequest{
		Steps: []string{"launch:earth", "land:pluto", "teleport:earth"},
	})
	if err == nil || err.Error() != "Unsupported planet: pluto" {
		t.Fatalf("Validate() error = %v, want Unsupported planet: pluto", err)
	}

	var verr *planner.ValidationError
	if !errors.As(err, &verr) || verr.Index != 1 {
		t.Errorf("expected ValidationError at index 1, got %v", err)
	}
}

func TestEngine_LogsRejections(t *testing.T) {
	eng, _ := newTestEngine(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, _ = eng.Validate(ctx, &ValidateRequest{Steps: []string{"land:vulcan"}})

	out := buf.String()
	if !strings.Contains(out, "calculation rejected") || !strings.Contains(out, "step=0") {
		t.Errorf("expected rejection log line, got %q", out)
	}
}

func TestEngine_Planets(t *testing.T) {
	eng := New(gravity.New(map[string]float64{"europa": 1.315}), hash.NewFakeHasher())

	entries := eng.Planets(context.Background())
	if len(entries) != 4 {
		t.Fatalf("expected 4 planets, got %d", len(entries))
	}
	if entries[0].Body != "earth" || entries[1].Body != "europa" {
		t.Errorf("unexpected order: %+v", entries)
	}
}
