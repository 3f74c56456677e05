package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"creatures/internal/config"
	"creatures/internal/creature"
	"creatures/internal/io"
	"creatures/internal/log"
	"creatures/internal/nn"
	"creatures/internal/render"
	"creatures/internal/stats"
	"creatures/internal/storage"
)

const partSpacing = 30

func runSimulate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	common := bindCommonFlags(fs)
	parts := fs.Int("parts", 0, "number of parts (0 uses the config value)")
	connections := fs.Int("connections", -1, "random brain connections (-1 uses the config value)")
	ticks := fs.Int("ticks", 100, "number of ticks to simulate")
	seed := fs.Int64("seed", 0, "random seed (0 uses [brain] seed, then the clock)")
	outDir := fs.String("out", "", "directory for run artifacts (empty disables them)")
	runID := fs.String("run-id", "", "run id for artifacts (random when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", *ticks)
	}

	cfg, err := loadSettings(fs, common, nil)
	if err != nil {
		return err
	}
	if *parts > 0 {
		cfg.Creature.Parts = *parts
	}
	if *connections >= 0 {
		cfg.Creature.RandomConnections = *connections
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Brain.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	c, bodies, err := buildCreature(cfg.Creature.Parts, cfg.Creature.RandomConnections, rngSeed, cfg.Brain)
	if err != nil {
		return err
	}

	start := centroid(bodies)
	distanceByTick := make([]float64, 0, *ticks)
	for tick := 0; tick < *ticks; tick++ {
		if err := c.Tick(ctx); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}
		for _, body := range bodies {
			body.Step()
		}
		current := centroid(bodies)
		distanceByTick = append(distanceByTick, math.Hypot(current.X-start.X, current.Y-start.Y))
	}
	if len(distanceByTick) > 0 {
		c.SetFitness(distanceByTick[len(distanceByTick)-1])
	}

	log.Infof("simulated creature with %d parts for %d ticks", len(bodies), *ticks)
	fmt.Fprintf(stdout, "simulated ticks=%d parts=%d connections=%d fitness=%.4f\n",
		*ticks, len(bodies), len(c.Brain().Connections()), c.Fitness())
	for i, part := range c.Parts() {
		body := bodies[i]
		fmt.Fprintf(stdout, "part=%d friction_air=%.4f speed=%.4f last_trigger=%s\n",
			i, body.FrictionAir(), body.Speed(), formatValues(lastTriggerValues(part)))
	}

	if *outDir == "" {
		return nil
	}
	id := *runID
	if id == "" {
		id = uuid.NewString()
	}
	runDir, err := writeSimulationArtifacts(*outDir, id, rngSeed, *ticks, cfg, c, distanceByTick)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "artifacts=%s\n", runDir)
	return nil
}

func writeSimulationArtifacts(outDir, runID string, seed int64, ticks int, cfg *config.Config, c *creature.Creature, distanceByTick []float64) (string, error) {
	parts := make([]stats.PartSnapshot, 0, len(c.Parts()))
	for _, part := range c.Parts() {
		parts = append(parts, stats.PartSnapshot{
			Radius:      part.Radius(),
			Color:       part.Color(),
			FrictionAir: part.Body().FrictionAir(),
			Speed:       part.Body().Speed(),
		})
	}

	runDir, err := stats.WriteRunArtifacts(outDir, stats.RunArtifacts{
		Config: stats.RunConfig{
			RunID:             runID,
			Parts:             len(parts),
			Ticks:             ticks,
			Seed:              seed,
			RandomConnections: cfg.Creature.RandomConnections,
			Activation:        cfg.Brain.Activation,
			WeightMin:         cfg.Brain.WeightMin,
			WeightMax:         cfg.Brain.WeightMax,
		},
		DistanceByTick: distanceByTick,
		FinalFitness:   c.Fitness(),
		Brain:          storage.BrainRecordFromNetwork(runID, c.Brain()),
		Parts:          parts,
	})
	if err != nil {
		return "", err
	}

	err = stats.AppendRunIndex(outDir, stats.RunIndexEntry{
		RunID:        runID,
		Parts:        len(parts),
		Ticks:        ticks,
		Seed:         seed,
		FinalFitness: c.Fitness(),
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339Nano),
	})
	return runDir, err
}

func runRuns(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	outDir := fs.String("out", "runs", "directory holding run artifacts")
	limit := fs.Int("limit", 0, "maximum runs to print (0 prints all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries, err := stats.ListRunIndex(*outDir)
	if err != nil {
		return err
	}
	if *limit > 0 && len(entries) > *limit {
		entries = entries[:*limit]
	}
	for _, entry := range entries {
		fmt.Fprintf(stdout, "run_id=%s parts=%d ticks=%d seed=%d fitness=%.4f created_at=%s\n",
			entry.RunID, entry.Parts, entry.Ticks, entry.Seed, entry.FinalFitness, entry.CreatedAtUTC)
	}
	return nil
}

// buildCreature lays parts out in a row, gives each a random initial push,
// and grows the brain by the requested number of random connections.
func buildCreature(numParts, connections int, seed int64, brain config.BrainConfig) (*creature.Creature, []*creature.PointBody, error) {
	rng := nn.NewSeededRand(seed)
	bodies := make([]*creature.PointBody, numParts)
	parts := make([]*creature.Part, numParts)
	for i := range parts {
		bodies[i] = creature.NewPointBody(render.Vector{X: float64(partSpacing * (i + 1)), Y: partSpacing})
		bodies[i].Push(render.Vector{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}, 0.2*rng.Float64()-0.1)
		parts[i] = creature.NewRandomPart(bodies[i], rng)
	}

	opts, err := brain.Options()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, nn.WithRand(rng), nn.WithLogger(log.Get()))

	c, err := creature.New(parts, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := c.Randomize(connections); err != nil {
		return nil, nil, err
	}
	return c, bodies, nil
}

// lastTriggerValues collects the most recent output of every trigger that
// keeps one.
func lastTriggerValues(part *creature.Part) []float64 {
	var values []float64
	for _, trigger := range part.Triggers() {
		if snapshot, ok := trigger.(io.SnapshotActuator); ok {
			values = append(values, snapshot.Last()...)
		}
	}
	return values
}

func centroid(bodies []*creature.PointBody) render.Vector {
	var sum render.Vector
	for _, body := range bodies {
		sum = sum.Add(body.Position())
	}
	n := float64(len(bodies))
	return render.Vector{X: sum.X / n, Y: sum.Y / n}
}
