package main

import (
	"bytes"
	"fmt"

	"github.com/nccl-format/go-nccl/encode"
	"github.com/nccl-format/go-nccl/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(a, b) {
		return nil
	}

	// Diff the canonical encodings so that formatting-only
	// differences in the inputs never show up.
	aText, err := canonical(a, cfg)
	if err != nil {
		return err
	}
	bText, err := canonical(b, cfg)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(aText, bText, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if colorEnabled(cfg.MainConfig, cc) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		fmt.Fprint(cc.Out, dmp.PatchToText(dmp.PatchMake(aText, diffs)))
	}
	return cli.ExitCodeErr(1)
}

func canonical(node *ir.Node, cfg *DiffConfig) (string, error) {
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{}
	switch {
	case cfg.Tabs:
		opts = append(opts, encode.EncodeTabs())
	case cfg.Unit > 0:
		opts = append(opts, encode.EncodeUnit(cfg.Unit))
	}
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
