package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/utils"
)

// SRTExporter 负责将切分结果导出为SRT字幕文件
type SRTExporter struct {
	OutputFolder string
}

// NewSRTExporter 创建一个新的SRT导出器
func NewSRTExporter(outputFolder string) *SRTExporter {
	return &SRTExporter{
		OutputFolder: outputFolder,
	}
}

// FormatSRTTime 将毫秒格式化为SRT时间格式 (HH:MM:SS,mmm)
func (e *SRTExporter) FormatSRTTime(ms int) string {
	hours := ms / 3600000
	minutes := ms % 3600000 / 60000
	secs := ms % 60000 / 1000
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// GenerateSRTContent 生成SRT格式内容
func (e *SRTExporter) GenerateSRTContent(segments []models.FlatSegment) string {
	var srtLines []string

	for i, segment := range segments {
		text := strings.TrimSpace(segment.FinalSentence)
		if text == "" {
			continue
		}

		endMs := segment.EndMs
		if endMs <= segment.StartMs {
			// 确保结束时间大于开始时间，至少5秒
			endMs = segment.StartMs + 5000
		}

		// 添加序号、时间范围和带说话人的文本
		srtLines = append(srtLines, fmt.Sprintf("%d", i+1))
		srtLines = append(srtLines, fmt.Sprintf("%s --> %s",
			e.FormatSRTTime(segment.StartMs), e.FormatSRTTime(endMs)))
		srtLines = append(srtLines, fmt.Sprintf("%s: %s", segment.SpeakerId, text))
		srtLines = append(srtLines, "") // 空行分隔
	}

	return strings.Join(srtLines, "\n")
}

// ExportSRT 导出SRT格式字幕文件
func (e *SRTExporter) ExportSRT(segments []models.FlatSegment, filename string) (string, error) {
	// 创建输出文件夹
	if err := os.MkdirAll(e.OutputFolder, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	// 构建文件名
	baseName := filepath.Base(filename)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	outputFile := filepath.Join(e.OutputFolder, fmt.Sprintf("%s.srt", baseName))

	// 生成SRT内容
	srtContent := e.GenerateSRTContent(segments)

	// 写入文件
	if err := os.WriteFile(outputFile, []byte(srtContent), 0644); err != nil {
		return "", fmt.Errorf("写入SRT文件失败: %w", err)
	}

	utils.Info("已导出SRT字幕: %s", outputFile)
	return outputFile, nil
}
