package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "dxfgeo",
		Short:        "把 DXF 图纸展开为点、线、面要素",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, verbose)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newInfoCmd())
	return root
}

// dragArgs 直接双击或把文件拖到程序上时没有子命令，按 convert 处理
func dragArgs(args []string) ([]string, bool) {
	if len(args) == 0 {
		file, err := zenity.SelectFile(
			zenity.Title("选择 DXF 图纸"),
			zenity.FileFilters{{Name: "DXF", Patterns: []string{"*.dxf", "*.dxf.gz", "*.dxf.zip"}}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				fmt.Println("请把DXF文件拖入该程序上执行！")
			}
			return nil, false
		}
		return []string{"convert", file}, true
	}

	if strings.HasPrefix(args[0], "-") {
		return args, false
	}
	if _, err := os.Stat(args[0]); err == nil && !isCommand(args[0]) {
		return append([]string{"convert"}, args...), true
	}
	return args, false
}

func isCommand(name string) bool {
	switch filepath.Base(name) {
	case "convert", "info", "help", "completion":
		return true
	}
	return false
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args, dragged := dragArgs(os.Args[1:])
	if dragged {
		defer xos.PauseExit()
	} else if len(os.Args) < 2 {
		xos.PauseExit()
		os.Exit(1)
	}

	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if dragged {
			fmt.Println(StyleError.Render(err.Error()))
			return
		}
		os.Exit(1)
	}
}
