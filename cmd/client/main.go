package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/hi-lo/internal/logger"
	"github.com/palemoky/hi-lo/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:1780", "服务器地址")
	solo := flag.Bool("solo", false, "单机模式，不连接服务器")
	flag.Parse()

	// 日志写到文件，避免污染终端界面
	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	var model tea.Model
	if *solo {
		model = ui.NewSoloModel()
	} else {
		serverURL := fmt.Sprintf("ws://%s/ws", *serverAddr)
		model = ui.NewOnlineModel(serverURL)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
