// ptrlayout 是状态指针位划分的查询工具。
//
// 给定元素类型的对齐值（以及可选的字宽、显式状态位数），输出该配置下
// 状态位 / 指针位的划分结果：位数、状态上限与两侧掩码。
//
// 用法:
//
//	ptrlayout [全局选项] <命令> [命令选项]
//
// 全局选项:
//
//	-f, --format   输出格式 text 或 json (默认: text)
//
// 命令:
//
//	report   输出单个「对齐 + 字宽 + 状态位数」组合的位划分报告
//	table    输出一系列 2 的幂对齐值的位划分总表
//	batch    从 YAML/JSON 配置批量输出多个类型的位划分报告
//	help     显示帮助信息
//
// 退出码:
//
//	0: 执行成功
//	1: 执行失败（配置文件不可读等）
//	2: 参数错误（非 2 的幂对齐、状态位数超限、不支持的字宽等）
//
// 示例:
//
//	ptrlayout report --align 8                  # 主机字宽下 8 字节对齐的划分
//	ptrlayout report --align 4096 --bits 3      # 显式只用 3 位状态
//	ptrlayout --format json table --max-align 64
//	ptrlayout batch --config layouts.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "ptrlayout",
		Usage:   "状态指针位划分查询工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输出格式 (text|json)",
				Value:   formatText,
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
