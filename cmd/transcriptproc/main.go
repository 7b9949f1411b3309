package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/internal/controller"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/utils"
)

var (
	inputDir   = flag.String("input", "./transcripts", "转录文件目录")
	outputDir  = flag.String("output", "./output", "输出目录")
	configFile = flag.String("config", "", "配置文件路径")
	chinese    = flag.Bool("chinese", false, "启用中文文本清理")
	watchMode  = flag.Bool("watch", false, "监听模式，持续处理新文件")
	logLevel   = flag.String("log-level", "info", "日志级别 (debug, info, warn, error)")
	logFile    = flag.String("log-file", "", "日志文件路径")
)

func main() {
	// 解析命令行参数
	flag.Parse()

	// 初始化日志
	_, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		*logLevel = "info"
	}

	utils.InitLogger(*logLevel, *logFile)

	// 打印欢迎信息
	printWelcome()

	// 加载配置
	config := loadConfig()

	// 创建处理器控制器
	pc, err := controller.NewProcessorController(config)
	if err != nil {
		logrus.Fatalf("初始化失败: %v", err)
	}
	defer pc.Shutdown()

	if config.WatchMode {
		fmt.Printf("监听目录: %s\n", config.InputFolder)
		if err := pc.Watch(); err != nil {
			logrus.Fatalf("监听失败: %v", err)
		}
	} else {
		if err := pc.ProcessDirectory(); err != nil {
			logrus.Fatalf("处理失败: %v", err)
		}
	}

	// 保存处理报告并打印统计信息
	if err := pc.SaveReport(); err != nil {
		logrus.Warnf("保存处理报告失败: %v", err)
	}
	pc.PrintStats()

	fmt.Println("\n所有文件处理完成!")
}

func printWelcome() {
	// 使用彩色输出打印欢迎信息
	fmt.Println()
	color.Cyan("================================")
	color.Cyan("   转录切分工具 - Go 实现版本   ")
	color.Cyan("================================")
	fmt.Println()
}

func loadConfig() *models.Config {
	fmt.Print("加载配置... ")

	config := models.NewDefaultConfig()

	// 如果指定了配置文件，尝试加载
	if *configFile != "" {
		err := config.LoadFromFile(*configFile)
		if err != nil {
			color.Yellow("警告: 加载配置文件失败: %v", err)
			logrus.Warnf("配置加载失败: %v，将使用默认配置", err)
		} else {
			color.Green("成功")
		}
	} else {
		color.Yellow("未指定配置文件，使用默认配置")
	}

	// 覆盖配置中的目录设置
	if *inputDir != "./transcripts" {
		config.InputFolder = *inputDir
	}

	if *outputDir != "./output" {
		config.OutputFolder = *outputDir
	}

	if *chinese {
		config.IsChinese = true
	}

	if *watchMode {
		config.WatchMode = true
	}

	// 确保目录存在
	os.MkdirAll(config.InputFolder, 0755)
	os.MkdirAll(config.OutputFolder, 0755)

	return config
}
