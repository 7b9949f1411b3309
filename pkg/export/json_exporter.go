package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/utils"
)

// JSONExporter 负责将切分结果导出为JSON文件
type JSONExporter struct {
    OutputFolder string
}

// NewJSONExporter 创建一个新的JSON导出器
func NewJSONExporter(outputFolder string) *JSONExporter {
    return &JSONExporter{
        OutputFolder: outputFolder,
    }
}

// ExportMinutes 导出按分钟分组的JSON文件（前端分页展示用）
func (e *JSONExporter) ExportMinutes(groups []models.MinuteSegment, filename string) (string, error) {
    outputFile, err := e.outputPath(filename, "_minutes.json")
    if err != nil {
        return "", err
    }

    jsonData, err := json.MarshalIndent(groups, "", "  ")
    if err != nil {
        return "", fmt.Errorf("JSON编码失败: %w", err)
    }

    if err := os.WriteFile(outputFile, jsonData, 0644); err != nil {
        return "", fmt.Errorf("写入JSON文件失败: %w", err)
    }

    utils.Info("已导出分钟分组JSON: %s", outputFile)
    return outputFile, nil
}

// ExportFlat 导出扁平化的JSON文件（下游存储用格式）
func (e *JSONExporter) ExportFlat(segments []models.FlatSegment, filename string) (string, error) {
    outputFile, err := e.outputPath(filename, "_segments.json")
    if err != nil {
        return "", err
    }

    jsonData, err := json.MarshalIndent(segments, "", "  ")
    if err != nil {
        return "", fmt.Errorf("JSON编码失败: %w", err)
    }

    if err := os.WriteFile(outputFile, jsonData, 0644); err != nil {
        return "", fmt.Errorf("写入JSON文件失败: %w", err)
    }

    utils.Info("已导出扁平化JSON: %s", outputFile)
    return outputFile, nil
}

// outputPath 构建输出文件路径并确保输出目录存在
func (e *JSONExporter) outputPath(filename, suffix string) (string, error) {
    if err := os.MkdirAll(e.OutputFolder, 0755); err != nil {
        return "", fmt.Errorf("创建输出目录失败: %w", err)
    }

    baseName := filepath.Base(filename)
    baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

    return filepath.Join(e.OutputFolder, baseName+suffix), nil
}
