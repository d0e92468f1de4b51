// bookshop 图书目录服务
//
//	bookshop serve   --config config/config.yaml
//	bookshop migrate --config config/config.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// 构建时通过ldflags注入
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "bookshop",
	Short:         "图书目录服务(管理端与读者端)",
	Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径(默认查找./config/config.yaml)")
}

// @title        Bookshop API
// @version      1.0
// @description  图书目录服务:管理端维护图书与作者,读者端读取富化后的图书并提交订单
// @host         localhost:8080
// @BasePath     /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bookshop: %v\n", err)
		os.Exit(1)
	}
}
