package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/export"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/utils"
)

// TranscriptProcessor 处理切分结果并生成各种输出文件
type TranscriptProcessor struct {
	Config       *models.Config
	SRTExporter  *export.SRTExporter
	JSONExporter *export.JSONExporter
}

// NewTranscriptProcessor 创建新的转录结果处理器
func NewTranscriptProcessor(config *models.Config) *TranscriptProcessor {
	return &TranscriptProcessor{
		Config:       config,
		SRTExporter:  export.NewSRTExporter(config.OutputFolder),
		JSONExporter: export.NewJSONExporter(config.OutputFolder),
	}
}

// ProcessResults 根据配置生成输出文件，返回类型到路径的映射
func (p *TranscriptProcessor) ProcessResults(groups []models.MinuteSegment, transcriptPath string) (map[string]string, error) {
	outputFiles := make(map[string]string)
	flat := Flatten(groups)

	// 1. 处理文本输出
	if p.Config.FormatText {
		textPath, err := p.generateTextOutput(flat, transcriptPath)
		if err != nil {
			return nil, err
		}
		outputFiles["txt"] = textPath
	}

	// 2. 如果配置指定，生成SRT字幕文件
	if p.Config.ExportSRT && len(flat) > 0 {
		srtPath, err := p.SRTExporter.ExportSRT(flat, transcriptPath)
		if err != nil {
			utils.Warn("导出SRT字幕失败: %v", err)
		} else {
			outputFiles["srt"] = srtPath
		}
	}

	// 3. 如果配置指定，生成分钟分组JSON
	if p.Config.ExportJSON && len(groups) > 0 {
		jsonPath, err := p.JSONExporter.ExportMinutes(groups, transcriptPath)
		if err != nil {
			utils.Warn("导出分钟分组JSON失败: %v", err)
		} else {
			outputFiles["json"] = jsonPath
		}
	}

	// 4. 如果配置指定，生成扁平化JSON（存储格式）
	if p.Config.FlattenOutput && len(flat) > 0 {
		flatPath, err := p.JSONExporter.ExportFlat(flat, transcriptPath)
		if err != nil {
			utils.Warn("导出扁平化JSON失败: %v", err)
		} else {
			outputFiles["flat"] = flatPath
		}
	}

	return outputFiles, nil
}

// generateTextOutput 生成带说话人的文本输出
func (p *TranscriptProcessor) generateTextOutput(segments []models.FlatSegment, transcriptPath string) (string, error) {
	var outputText strings.Builder

	// 1. 准备文件头信息
	baseName := filepath.Base(transcriptPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	outputText.WriteString("# " + baseName)
	outputText.WriteString("\n# 处理时间: " + utils.GetCurrentTimeString())
	outputText.WriteString("\n\n")

	// 2. 格式化文本内容
	outputText.WriteString(p.formatSegmentText(segments, p.Config.IncludeTimestamps))

	// 3. 写入文件
	if err := utils.EnsureDirExists(p.Config.OutputFolder); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	outputFile := filepath.Join(p.Config.OutputFolder, fmt.Sprintf("%s.txt", baseName))

	if err := os.WriteFile(outputFile, []byte(outputText.String()), 0644); err != nil {
		return "", fmt.Errorf("写入文本文件失败: %w", err)
	}

	return outputFile, nil
}

// formatSegmentText 格式化句子序列
func (p *TranscriptProcessor) formatSegmentText(segments []models.FlatSegment, includeTimestamps bool) string {
	var formattedSegments []string

	for _, segment := range segments {
		if segment.FinalSentence == "" {
			continue
		}

		// 添加时间戳（如果需要）
		if includeTimestamps {
			formattedSegments = append(formattedSegments, fmt.Sprintf("[%s] %s: %s",
				utils.FormatClockTime(segment.StartMs), segment.SpeakerId, segment.FinalSentence))
		} else {
			formattedSegments = append(formattedSegments, fmt.Sprintf("%s: %s",
				segment.SpeakerId, segment.FinalSentence))
		}
	}

	// 用新行分隔每个句子
	return strings.Join(formattedSegments, "\n\n")
}
