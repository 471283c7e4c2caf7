package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/logging"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/server"
	"github.com/pranavsofficial-beep/auto-pjp-generator/internal/util"
)

var (
	servePort int
	serveDev  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the PJP form and export API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "开发模式（不自动打开浏览器）")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, info, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.Log

	if servePort > 0 && !info.PortSpecified {
		cfg.Server.Port = servePort
	}
	if serveDev {
		cfg.Server.DevMode = true
	}

	port, err := util.FindAvailablePort(cfg.Server.Port)
	if err != nil {
		return err
	}
	if port != cfg.Server.Port {
		log.Warnf("端口 %d 被占用，改用 %d", cfg.Server.Port, port)
		cfg.Server.Port = port
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("创建服务失败: %w", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("服务启动中，监听端口 %d ...", cfg.Server.Port)
		errCh <- srv.Run(addr)
	}()

	if !cfg.Server.DevMode {
		log.Infof("正在打开浏览器: %s", url)
		if err := util.OpenBrowser(url); err != nil {
			log.Warnf("无法自动打开浏览器，请手动访问: %s", url)
		}
	} else {
		log.Infof("开发模式: 请访问 %s", url)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
