package main

import (
	"fmt"

	"github.com/nccl-format/go-nccl/encode"
	"github.com/nccl-format/go-nccl/merge"

	"github.com/scott-cotton/cli"
)

func mergeCmd(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: merge requires at least a base document", cli.ErrUsage)
	}
	res, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, arg := range args[1:] {
		overlay, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res = merge.Merge(res, overlay)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
