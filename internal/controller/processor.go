package controller

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/internal/watcher"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/scanner"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/transcript"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/utils"
)

// ProcessorController 处理器控制器，协调扫描、切分和导出
type ProcessorController struct {
	// 配置
	Config *models.Config

	// 处理组件
	Scanner   *scanner.TranscriptScanner
	Processor *transcript.TranscriptProcessor

	// 错误处理
	errorHandler *utils.ErrorHandler

	// 上下文控制
	ctx        context.Context
	cancelFunc context.CancelFunc

	// 状态数据
	Stats struct {
		StartTime       time.Time
		TotalFiles      int
		SuccessfulFiles int
		FailedFiles     int
	}

	// 已处理文件记录（监听模式下防止重复处理）
	processedFiles map[string]bool
	results        []*models.Result
	mu             sync.Mutex
}

// NewProcessorController 创建处理器控制器
func NewProcessorController(config *models.Config) (*ProcessorController, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	pc := &ProcessorController{
		Config:         config,
		Scanner:        scanner.NewTranscriptScanner(),
		Processor:      transcript.NewTranscriptProcessor(config),
		errorHandler:   utils.NewErrorHandler(config.MaxRetries, config.RetryDelay),
		ctx:            ctx,
		cancelFunc:     cancel,
		processedFiles: make(map[string]bool),
	}
	pc.Stats.StartTime = time.Now()

	return pc, nil
}

// ProcessFile 处理单个转录文件
func (pc *ProcessorController) ProcessFile(filePath string) (*models.Result, error) {
	startTime := time.Now()

	if !utils.CheckFileExists(filePath) {
		return nil, utils.NewError(fmt.Sprintf("转录文件不存在: %s", filePath), nil)
	}

	// 读取转录文件，失败时重试（文件可能仍在写入）
	var data *transcript.TranscriptResult
	err := pc.errorHandler.Retry("读取转录文件", func() error {
		var loadErr error
		data, loadErr = transcript.LoadTranscriptFile(filePath)
		return loadErr
	})
	if err != nil {
		return nil, err
	}

	// 切分转录结果
	segmenter := transcript.NewSegmenter(pc.Config.IsChinese)
	groups, err := segmenter.Process(data)
	if err != nil {
		return nil, utils.NewError(fmt.Sprintf("切分转录文件 %s 失败", filePath), err)
	}

	// 生成输出文件
	outputFiles, err := pc.Processor.ProcessResults(groups, filePath)
	if err != nil {
		return nil, utils.NewError(fmt.Sprintf("生成输出文件失败: %s", filePath), err)
	}

	flat := transcript.Flatten(groups)
	result := &models.Result{
		TaskID:        uuid.New().String(),
		FilePath:      filePath,
		OutputFiles:   outputFiles,
		SegmentCount:  len(flat),
		MinuteCount:   len(groups),
		SpeakerCount:  segmenter.SpeakerCount(),
		ProcessTimeMs: time.Since(startTime).Milliseconds(),
	}
	if len(flat) > 0 {
		result.DurationMs = flat[len(flat)-1].EndMs
	}

	utils.Info("处理完成: %s (%d 个句子, %d 个分钟分组, %d 个说话人)",
		filePath, result.SegmentCount, result.MinuteCount, result.SpeakerCount)

	return result, nil
}

// ProcessDirectory 并发处理输入目录中的全部转录文件
func (pc *ProcessorController) ProcessDirectory() error {
	files, err := pc.Scanner.ScanDirectory(pc.Config.InputFolder)
	if err != nil {
		return utils.NewError("扫描输入目录失败", err)
	}

	pc.mu.Lock()
	processed := make(map[string]bool, len(pc.processedFiles))
	for path := range pc.processedFiles {
		processed[path] = true
	}
	pc.mu.Unlock()

	newFiles := pc.Scanner.FilterNewFiles(files, processed)
	if len(newFiles) == 0 {
		utils.Info("没有找到需要处理的转录文件")
		return nil
	}

	// 使用协程池处理文件，信号量限制并发
	// 切分引擎本身无共享状态，按文件并发是安全的
	var wg sync.WaitGroup
	sem := make(chan struct{}, pc.Config.MaxWorkers)

	for i, file := range newFiles {
		wg.Add(1)
		sem <- struct{}{} // 获取信号量

		go func(index int, f scanner.TranscriptFile) {
			defer wg.Done()
			defer func() { <-sem }() // 释放信号量

			fmt.Printf("\n[%d/%d] 开始处理: %s (%s)\n",
				index+1, len(newFiles), f.Name, utils.FormatFileSize(f.Size))

			result, err := pc.ProcessFile(f.Path)
			pc.recordResult(f.Path, result, err)

			if err != nil {
				color.Red("[%d/%d] 处理失败: %s - %v", index+1, len(newFiles), f.Name, err)
			} else {
				color.Green("[%d/%d] 处理成功: %s", index+1, len(newFiles), f.Name)
				fmt.Printf("处理用时: %s\n", utils.FormatTimeDuration(float64(result.ProcessTimeMs)/1000))
			}
		}(i, file)
	}

	wg.Wait()
	return nil
}

// Watch 启动监听模式，处理输入目录中新出现的转录文件
// 阻塞直到收到中断信号
func (pc *ProcessorController) Watch() error {
	monitor, err := watcher.NewFolderMonitor(pc.Config.InputFolder,
		pc.Scanner.Extensions, pc, 2*time.Second)
	if err != nil {
		return err
	}

	if err := monitor.Start(); err != nil {
		return err
	}
	defer monitor.Stop()

	// 先处理目录中已有的文件
	if err := pc.ProcessDirectory(); err != nil {
		utils.Warn("处理存量文件失败: %v", err)
	}

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		utils.Info("收到信号 %v，停止监听", sig)
	case <-pc.ctx.Done():
	}

	return nil
}

// OnFileCreated 实现watcher.FileEventHandler，处理新出现的转录文件
func (pc *ProcessorController) OnFileCreated(filePath string) {
	pc.mu.Lock()
	if pc.processedFiles[filePath] {
		pc.mu.Unlock()
		return
	}
	pc.mu.Unlock()

	result, err := pc.ProcessFile(filePath)
	pc.recordResult(filePath, result, err)

	if err != nil {
		color.Red("处理失败: %s - %v", filePath, err)
	} else {
		color.Green("处理成功: %s", filePath)
	}
}

// OnFileModified 实现watcher.FileEventHandler
func (pc *ProcessorController) OnFileModified(filePath string) {
	// 修改事件经过去抖动后以创建事件形式到达，这里无需处理
}

// OnFileDeleted 实现watcher.FileEventHandler
func (pc *ProcessorController) OnFileDeleted(filePath string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	delete(pc.processedFiles, filePath)
}

// recordResult 记录单个文件的处理结果
func (pc *ProcessorController) recordResult(filePath string, result *models.Result, err error) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.Stats.TotalFiles++
	if err != nil {
		pc.Stats.FailedFiles++
		return
	}
	pc.Stats.SuccessfulFiles++
	pc.processedFiles[filePath] = true
	pc.results = append(pc.results, result)
}

// SaveReport 将本次运行的全部处理结果写入输出目录
func (pc *ProcessorController) SaveReport() error {
	pc.mu.Lock()
	results := append([]*models.Result(nil), pc.results...)
	pc.mu.Unlock()

	if len(results) == 0 {
		return nil
	}

	reportPath := filepath.Join(pc.Config.OutputFolder, "processing_report.json")
	if err := utils.SaveJSONFile(reportPath, results); err != nil {
		return utils.NewError("保存处理报告失败", err)
	}

	utils.Info("已保存处理报告: %s", reportPath)
	return nil
}

// Shutdown 取消正在进行的处理
func (pc *ProcessorController) Shutdown() {
	pc.cancelFunc()
}

// PrintStats 打印处理统计信息
func (pc *ProcessorController) PrintStats() {
	elapsed := time.Since(pc.Stats.StartTime)

	fmt.Println("\n--------------------")
	fmt.Printf("处理文件总数: %d\n", pc.Stats.TotalFiles)
	color.Green("成功: %d", pc.Stats.SuccessfulFiles)
	if pc.Stats.FailedFiles > 0 {
		color.Red("失败: %d", pc.Stats.FailedFiles)
	}
	fmt.Printf("总用时: %s\n", utils.FormatTimeDuration(elapsed.Seconds()))
	fmt.Println("--------------------")

	pc.errorHandler.PrintErrorStats()
}
