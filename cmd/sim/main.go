package main

import (
	"embed"
	"flag"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/yechan-k/rollball/internal/application/replay"
	"github.com/yechan-k/rollball/internal/application/session"
	"github.com/yechan-k/rollball/internal/application/system"
	"github.com/yechan-k/rollball/internal/infrastructure/config"
	"github.com/yechan-k/rollball/internal/infrastructure/logging"
	"github.com/yechan-k/rollball/internal/injector"
)

//go:embed configs
var configFS embed.FS

// progressEvery controls how often the run logs a state line.
const progressEvery = 120

func main() {
	configDir := flag.String("config", "", "config directory (default: embedded configs)")
	world := flag.String("world", "hills", "world name under worlds/")
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "timestep in seconds")
	record := flag.String("record", "", "record the run to this file")
	replayFile := flag.String("replay", "", "play back a recording instead of the scripted run")
	verify := flag.Bool("verify", false, "verify the replayed digest against the recording")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger, *configDir, *world, *ticks, *dt, *record, *replayFile, *verify); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, configDir, world string, ticks int, dt float64, record, replayFile string, verify bool) error {
	loader, err := newLoader(configDir)
	if err != nil {
		return err
	}

	var source session.InputSource
	var wantDigest string
	if replayFile != "" {
		recording, err := replay.Load(replayFile)
		if err != nil {
			return err
		}
		if recording.World != "" {
			world = recording.World
		}
		wantDigest = recording.Digest
		source = session.NewReplaySource(replay.NewReplayer(*recording))
		logger.Info("replaying recording",
			zap.String("id", recording.ID),
			zap.String("world", world),
			zap.Int("frames", len(recording.Frames)))
	} else {
		source = session.NewScriptedSource(demoScript(ticks), dt)
	}

	sess, err := injector.InitializeSession(loader, logger, injector.Params{
		World:  world,
		Source: source,
	})
	if err != nil {
		return err
	}

	var recorder *replay.Recorder
	if record != "" {
		recorder = replay.NewRecorder(world)
		sess.AttachRecorder(recorder)
	}

	for sess.Step() {
		if sess.Tick()%progressEvery == 0 {
			snap := sess.Snapshot()
			logger.Info("tick",
				zap.Int("n", snap.Tick),
				zap.Float64("x", snap.Position.X()),
				zap.Float64("y", snap.Position.Y()),
				zap.Float64("vx", snap.LinearVelocity.X()),
				zap.Float64("vy", snap.LinearVelocity.Y()),
				zap.Bool("grounded", snap.Grounded))
		}
	}

	snap := sess.Snapshot()
	logger.Info("run finished",
		zap.Int("ticks", snap.Tick),
		zap.Float64("x", snap.Position.X()),
		zap.Float64("y", snap.Position.Y()),
		zap.String("digest", sess.Digest()))

	if recorder != nil {
		if err := recorder.Save(record); err != nil {
			return err
		}
		logger.Info("recording saved", zap.String("file", record), zap.Int("frames", recorder.FrameCount()))
	}

	if verify {
		if wantDigest == "" {
			logger.Warn("nothing to verify: no recorded digest")
			return nil
		}
		if got := sess.Digest(); got != wantDigest {
			logger.Error("digest mismatch",
				zap.String("want", wantDigest),
				zap.String("got", got))
			os.Exit(1)
		}
		logger.Info("digest verified", zap.String("digest", wantDigest))
	}

	return nil
}

func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(sub, "configs"), nil
}

// demoScript rolls right for most of the run with a few jumps on the way.
func demoScript(ticks int) *system.Script {
	right := system.InputState{Right: true}
	return system.NewScript(ticks,
		system.ScriptKeyframe{From: 0, Input: right},
		system.ScriptKeyframe{From: ticks / 4, Input: system.InputState{Right: true, Jump: true}},
		system.ScriptKeyframe{From: ticks/4 + 2, Input: right},
		system.ScriptKeyframe{From: ticks / 2, Input: system.InputState{Right: true, Jump: true}},
		system.ScriptKeyframe{From: ticks/2 + 2, Input: right},
	)
}
