package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ptrkit/pkg/config/xconf"
	"github.com/omeyang/ptrkit/pkg/ptr/xbit"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createReportCommand(),
		createTableCommand(),
		createBatchCommand(),
	}
}

func createReportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "输出单个「对齐 + 字宽 + 状态位数」组合的位划分报告",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:     "align",
				Aliases:  []string{"a"},
				Usage:    "元素类型的对齐值（字节，2 的幂）",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "word",
				Usage: "指针字宽（32 或 64）",
				Value: xbit.WordBits,
			},
			&cli.IntFlag{
				Name:    "bits",
				Aliases: []string{"b"},
				Usage:   "显式请求的状态位数（缺省按对齐值推导）",
				Value:   -1,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			r, err := computeLayout("", uint64(cmd.Uint("word")), uint64(cmd.Uint("align")), int64(cmd.Int("bits")))
			if err != nil {
				return err
			}
			return emit(cmd, []layoutReport{r}, false)
		},
	}
}

func createTableCommand() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "输出一系列 2 的幂对齐值的位划分总表",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "max-align",
				Usage: "总表覆盖的最大对齐值（2 的幂）",
				Value: 4096,
			},
			&cli.UintFlag{
				Name:  "word",
				Usage: "指针字宽（32 或 64）",
				Value: xbit.WordBits,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			reports, err := buildTable(uint64(cmd.Uint("word")), uint64(cmd.Uint("max-align")))
			if err != nil {
				return err
			}
			return emit(cmd, reports, true)
		},
	}
}

// buildTable 枚举 1..maxAlign 的全部 2 的幂对齐值。
func buildTable(word, maxAlign uint64) ([]layoutReport, error) {
	if maxAlign == 0 || maxAlign&(maxAlign-1) != 0 {
		return nil, usageErrorf("最大对齐值 %d 不是 2 的幂", maxAlign)
	}
	var reports []layoutReport
	for align := uint64(1); align <= maxAlign; align <<= 1 {
		r, err := computeLayout("", word, align, -1)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// batchEntry 批量配置中的一条记录。
type batchEntry struct {
	// Name 报告中的类型名。
	Name string `koanf:"name"`

	// Align 对齐值（字节，2 的幂）。
	Align uint64 `koanf:"align"`

	// Bits 显式请求的状态位数；缺省按对齐值推导。
	Bits *int64 `koanf:"bits"`

	// Word 字宽覆盖；缺省用文件级 word 或主机字宽。
	Word uint64 `koanf:"word"`
}

// batchFile 批量配置文件结构。
type batchFile struct {
	// Word 文件级默认字宽；缺省为主机字宽。
	Word uint64 `koanf:"word"`

	// Entries 待报告的类型列表。
	Entries []batchEntry `koanf:"entries"`
}

func createBatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "从 YAML/JSON 配置批量输出多个类型的位划分报告",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "配置文件路径 (.yaml/.yml/.json)",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := xconf.New(cmd.String("config"))
			if err != nil {
				return err
			}
			reports, err := buildBatch(cfg)
			if err != nil {
				return err
			}
			return emit(cmd, reports, true)
		},
	}
}

// buildBatch 解析批量配置并逐条计算。
func buildBatch(cfg *xconf.Config) ([]layoutReport, error) {
	var file batchFile
	if err := cfg.Unmarshal("", &file); err != nil {
		return nil, err
	}
	if len(file.Entries) == 0 {
		return nil, usageErrorf("配置 %s 中没有 entries", cfg.Path())
	}

	defaultWord := file.Word
	if defaultWord == 0 {
		defaultWord = xbit.WordBits
	}

	reports := make([]layoutReport, 0, len(file.Entries))
	for i, e := range file.Entries {
		word := e.Word
		if word == 0 {
			word = defaultWord
		}
		bits := int64(-1)
		if e.Bits != nil {
			bits = *e.Bits
		}
		r, err := computeLayout(e.Name, word, e.Align, bits)
		if err != nil {
			return nil, fmt.Errorf("entries[%d] (%s): %w", i, e.Name, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// emit 按全局 format 渲染并写到标准输出。
func emit(cmd *cli.Command, reports []layoutReport, table bool) error {
	out, err := render(cmd.String("format"), reports, table)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}
