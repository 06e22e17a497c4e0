package traffic

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/floodflow/concurrent"
	"github.com/katalvlaran/floodflow/config"
	"github.com/katalvlaran/floodflow/flow"
	"github.com/katalvlaran/floodflow/topology"
)

var (
	// ErrConfig marks malformed input: area states, scenario level or parameters.
	ErrConfig = errors.New("traffic: configuration error")

	// ErrInternal marks a flow problem that could not be solved or failed
	// verification. It points at broken topology or weighting data.
	ErrInternal = errors.New("traffic: internal error")
)

// Engine runs the full computation for a fixed parameter set. It is safe
// for concurrent use; every Compute call allocates its own problems.
type Engine struct {
	params  config.Parameters
	weights Weights
	rates   Rates
	solver  flow.Solver
	log     *zap.Logger
	workers int
	verify  bool
	hook    func(*Problem)
}

// Option customizes an Engine.
type Option func(*Engine)

// WithSolver replaces the default SuccessiveShortestPaths solver.
func WithSolver(s flow.Solver) Option {
	return func(e *Engine) {
		if s != nil {
			e.solver = s
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithWorkers solves per-source problems on n goroutines. n <= 1 keeps the
// computation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithVerification checks every solution for capacity, conservation and
// cost, and against the shortest-path lower bound when capacities cannot bind.
func WithVerification() Option {
	return func(e *Engine) { e.verify = true }
}

// WithProblemHook calls fn with every problem before it is solved, on the
// calling goroutine and in area declaration order.
func WithProblemHook(fn func(*Problem)) Option {
	return func(e *Engine) { e.hook = fn }
}

// NewEngine validates params and the static topology and returns an Engine.
// Invalid parameters yield ErrConfig; an inconsistent topology yields ErrInternal.
func NewEngine(params config.Parameters, opts ...Option) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := topology.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	e := &Engine{
		params:  params,
		weights: WeightsFrom(params),
		rates:   RatesFrom(params),
		solver:  flow.SuccessiveShortestPaths,
		log:     zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Parameters returns the engine's parameter set.
func (e *Engine) Parameters() config.Parameters { return e.params }

// job is one populated source area and its problem.
type job struct {
	state   topology.State
	problem *Problem
}

// outcome is the solved, normalized form of a job.
type outcome struct {
	contribution Contribution
	summary      ProblemSummary
	err          error
}

// Compute runs one scenario.
//
// Steps:
//  1. Parse states (12 values in {0,1,2}) and scenario ({0,1,2}); reject with ErrConfig.
//  2. Derive the weighting of all areas.
//  3. Build one problem per populated area, in declaration order, and check
//     that the source reaches every area with demand.
//  4. Solve and normalize every problem, in parallel if configured.
//  5. Merge contributions in declaration order, then apply flood scaling.
//
// Either a full Result is returned or an error; there are no partial results.
func (e *Engine) Compute(ctx context.Context, states []int, scenario int) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := topology.ParseStates(states)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	sc, err := topology.ParseScenario(scenario)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	weighting := Weighting(st, e.weights)
	policy := ArcPolicy{
		Communication: sc.Communication(),
		Avoidance:     e.params.FloodedStreetAvoidance,
		Capacity:      e.params.Capacity,
	}

	var jobs []job
	for _, id := range topology.AreaIDs() {
		if !st[id].IsPopulated() {
			continue
		}
		p, err := BuildProblem(id, weighting, policy)
		if err != nil {
			return nil, fmt.Errorf("%w: source %s: %w", ErrInternal, id, err)
		}
		if err = p.CheckReachable(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if e.hook != nil {
			e.hook(p)
		}
		jobs = append(jobs, job{state: st[id], problem: p})
	}

	solve := func(j job) outcome { return e.solve(ctx, j) }
	var outcomes []outcome
	if e.workers > 1 && len(jobs) > 1 {
		outcomes = concurrent.Map(e.workers, jobs, solve)
	} else {
		outcomes = make([]outcome, 0, len(jobs))
		for _, j := range jobs {
			o := solve(j)
			outcomes = append(outcomes, o)
			if o.err != nil {
				break
			}
		}
	}

	agg := NewAggregatedFlow()
	summaries := make([]ProblemSummary, 0, len(outcomes))
	for _, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		agg.Add(o.contribution)
		summaries = append(summaries, o.summary)
	}
	scaled := agg.ScaleFlooded(sc, e.params.FloodedStreetDensity)

	e.log.Sugar().Infof("computed %q: %d populated areas, %d workers", sc.String(), len(jobs), e.workers)

	return &Result{
		scenario: sc,
		states:   st,
		raw:      agg,
		flows:    scaled,
		problems: summaries,
	}, nil
}

// solve runs the solver on one job, optionally verifies, and normalizes.
func (e *Engine) solve(ctx context.Context, j job) outcome {
	p := j.problem
	res, err := e.solver.Solve(p.Graph, p.Demands, flow.FlowOptions{Ctx: ctx})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return outcome{err: err}
		}
		return outcome{err: fmt.Errorf("%w: source %s: %w", ErrInternal, p.Source, err)}
	}
	if e.verify {
		if err = e.check(p, res); err != nil {
			return outcome{err: fmt.Errorf("%w: source %s: %w", ErrInternal, p.Source, err)}
		}
	}

	e.log.Debug("solved source",
		zap.String("source", p.Source),
		zap.Int64("total_demand", p.TotalDemand),
		zap.Int64("cost", res.Cost),
	)

	return outcome{
		contribution: Normalize(p, res.Assignment, j.state, e.rates),
		summary: ProblemSummary{
			Source:      p.Source,
			State:       j.state,
			TotalDemand: p.TotalDemand,
			Cost:        res.Cost,
		},
	}
}

func (e *Engine) check(p *Problem, res *flow.Result) error {
	if p.TotalDemand == 0 || e.params.Capacity < p.TotalDemand {
		return flow.Verify(p.Graph, p.Demands, res)
	}

	return flow.VerifyOptimal(p.Graph, p.Demands, res)
}
