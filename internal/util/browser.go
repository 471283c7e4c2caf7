package util

import (
	"fmt"
	"net"
	"os/exec"
	"runtime"
)

// browserCommands 按平台列出打开 URL 的候选命令（按优先级）
func browserCommands(goos, url string) [][]string {
	switch goos {
	case "windows":
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		return [][]string{
			{"xdg-open", url},
			{"sensible-browser", url},
			{"firefox", url},
			{"google-chrome", url},
		}
	}
}

// OpenBrowser 用默认浏览器打开表单页面，依次尝试候选命令
func OpenBrowser(url string) error {
	var lastErr error
	for _, args := range browserCommands(runtime.GOOS, url) {
		if err := exec.Command(args[0], args[1:]...).Start(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("open browser: %w", lastErr)
}

// FindAvailablePort 从 startPort 起查找可监听的端口（最多尝试 20 个）
func FindAvailablePort(startPort int) (int, error) {
	for port := startPort; port < startPort+20; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			continue
		}
		_ = ln.Close()
		return port, nil
	}
	return 0, fmt.Errorf("no available port in %d-%d", startPort, startPort+19)
}
