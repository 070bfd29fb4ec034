package engine

import (
	"context"
	"errors"

	"github.com/danieljhkim/missionfuel/internal/ctxlog"
	"github.com/danieljhkim/missionfuel/internal/fuel"
	"github.com/danieljhkim/missionfuel/internal/metrics"
	"github.com/danieljhkim/missionfuel/internal/planner"
)

// Fuel computes the fuel for a single step.
func (e *Engine) Fuel(ctx context.Context, req *FuelRequest) (*FuelResult, error) {
	if err := checkMass(req.Mass); err != nil {
		return nil, err
	}

	b, err := e.calc.Breakdown(req.Mass, fuel.Action(req.Action), req.Body)
	if err != nil {
		return nil, e.rejected(ctx, "fuel", err)
	}

	metrics.RecordCalculation("fuel", metrics.OutcomeOK)
	ctxlog.FromContext(ctx).Debug("fuel calculated",
		"mass", req.Mass, "action", req.Action, "body", req.Body, "fuel", b.Total())

	return &FuelResult{
		Mass:   req.Mass,
		Action: req.Action,
		Body:   req.Body,
		Base:   b.Base,
		Carry:  b.Carry,
		Fuel:   b.Total(),
	}, nil
}

// Mission plans the fuel for a whole flight path.
func (e *Engine) Mission(ctx context.Context, req *MissionRequest) (*MissionResult, error) {
	if err := checkMass(req.Mass); err != nil {
		return nil, err
	}

	path, err := planner.ParsePath(req.Steps)
	if err != nil {
		return nil, err
	}

	plan, err := e.planner.Plan(req.Mass, path)
	if err != nil {
		return nil, e.rejected(ctx, "mission", err)
	}

	metrics.RecordCalculation("mission", metrics.OutcomeOK)
	ctxlog.FromContext(ctx).Debug("mission planned",
		"mass", req.Mass, "steps", len(path), "total_fuel", plan.TotalFuel)

	return &MissionResult{
		Mass:        req.Mass,
		Steps:       path.Strings(),
		Legs:        plan.Legs,
		TotalFuel:   plan.TotalFuel,
		Fingerprint: e.fingerprint(req.Mass, path),
	}, nil
}

// Validate checks a flight path, reporting only the first unsupported step.
func (e *Engine) Validate(ctx context.Context, req *ValidateRequest) (*ValidateResult, error) {
	path, err := planner.ParsePath(req.Steps)
	if err != nil {
		return nil, err
	}

	if err := e.planner.Validate(path); err != nil {
		return nil, e.rejected(ctx, "validate", err)
	}

	metrics.RecordCalculation("validate", metrics.OutcomeOK)
	return &ValidateResult{Valid: true, Steps: len(path)}, nil
}

// rejected records a domain failure and marks it as ErrValidation.
func (e *Engine) rejected(ctx context.Context, operation string, err error) error {
	metrics.RecordCalculation(operation, metrics.OutcomeInvalid)

	attrs := []any{"operation", operation, "error", err.Error()}
	var verr *planner.ValidationError
	if errors.As(err, &verr) {
		attrs = append(attrs, "step", verr.Index)
	}
	ctxlog.FromContext(ctx).Info("calculation rejected", attrs...)

	return asValidation(err)
}
