package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xtpool/pkg/lifecycle/xrun"
	"github.com/omeyang/xtpool/pkg/observability/xlog"
	"github.com/omeyang/xtpool/pkg/util/xpool"
	"github.com/omeyang/xtpool/pkg/util/xsys"
)

func createComputeCommand() *cli.Command {
	return &cli.Command{
		Name:  "compute",
		Usage: "计算 π",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    flagTerms,
				Aliases: []string{"n"},
				Usage:   "级数项数",
				Value:   defaultTerms,
			},
			&cli.IntFlag{
				Name:    flagWorkers,
				Aliases: []string{"w"},
				Usage:   "worker 数量，0 表示使用全部硬件线程",
			},
			&cli.BoolFlag{
				Name:  flagLockOS,
				Usage: "每个 worker 独占一个 OS 线程",
			},
			&cli.BoolFlag{
				Name:  flagMetrics,
				Usage: "计算结束后输出任务统计",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			root := cmd.Root()
			logger, cleanup, err := newLogger(cfg.Log, root.ErrWriter)
			if err != nil {
				return usageErrorf("%v", err)
			}
			defer func() { _ = cleanup() }()

			return xrun.RunWithOptions(ctx, []xrun.Option{
				xrun.WithName("xpi"),
				xrun.WithLogger(logger),
			}, func(ctx context.Context) error {
				return compute(ctx, cmd, cfg, logger)
			})
		},
	}
}

// compute 创建 pool 并计算 π。被信号中断时停止等待，
// 但 Close 仍会等待已提交的项全部执行完毕。
func compute(ctx context.Context, cmd *cli.Command, cfg Config, logger xlog.Logger) (err error) {
	opts := []xpool.Option{
		xpool.WithLogger(logger),
		xpool.WithName(cfg.Pool.Name),
	}
	if cfg.Pool.LockOSThread {
		opts = append(opts, xpool.WithLockOSThread())
	}

	var tel *telemetry
	if cmd.Bool(flagMetrics) {
		if tel, err = newTelemetry(); err != nil {
			return err
		}
		defer func() { err = errors.Join(err, tel.shutdown(context.Background())) }()
		opts = append(opts, xpool.WithObserver(tel.observer))
	}

	pool, err := xpool.New(cfg.Pool.Workers, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	pi, err := computePi(ctx, pool, cfg.Pi.Terms)
	closeErr := pool.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	logger.Info(ctx, "pi computed",
		xlog.Count(cfg.Pi.Terms),
		xlog.Duration(time.Since(start)),
		xlog.Component(pool.Name()),
	)

	w := cmd.Root().Writer
	fmt.Fprintf(w, "Pi = %.12f\n", pi)
	if tel != nil {
		return tel.report(ctx, w)
	}
	return nil
}

func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:         "info",
		Usage:        "显示硬件并发数与文件描述符上限",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			fmt.Fprintf(w, "hardware concurrency: %d\n", xsys.HardwareConcurrency())

			soft, hard, err := xsys.GetFileLimit()
			if errors.Is(err, xsys.ErrUnsupportedPlatform) {
				fmt.Fprintln(w, "file limit: unsupported")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "file limit: soft=%d hard=%d\n", soft, hard)
			return nil
		},
	}
}
