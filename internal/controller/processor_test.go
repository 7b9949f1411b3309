package controller

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
)

const sampleTranscript = `{
	"results": {
		"items": [
			{"type": "pronunciation", "start_time": "0.0", "end_time": "0.5",
			 "alternatives": [{"content": "Hello"}], "speaker_label": "spk_0"},
			{"type": "punctuation", "alternatives": [{"content": "."}]},
			{"type": "pronunciation", "start_time": "5.2", "end_time": "5.6",
			 "alternatives": [{"content": "World"}], "speaker_label": "spk_1"}
		]
	}
}`

func testController(t *testing.T) *ProcessorController {
	config := models.NewDefaultConfig()
	config.InputFolder = t.TempDir()
	config.OutputFolder = t.TempDir()
	config.RetryDelay = 0.1

	pc, err := NewProcessorController(config)
	assert.NoError(t, err)
	return pc
}

func TestProcessFile(t *testing.T) {
	pc := testController(t)
	defer pc.Shutdown()

	path := filepath.Join(pc.Config.InputFolder, "meeting.json")
	assert.NoError(t, os.WriteFile(path, []byte(sampleTranscript), 0644))

	result, err := pc.ProcessFile(path)

	assert.NoError(t, err)
	assert.Equal(t, path, result.FilePath)
	assert.Equal(t, 1, result.SegmentCount)
	assert.Equal(t, 1, result.MinuteCount)
	assert.Equal(t, 1, result.SpeakerCount)
	assert.Equal(t, 5600, result.DurationMs)

	// 任务ID必须是合法的UUID
	_, err = uuid.Parse(result.TaskID)
	assert.NoError(t, err)

	// 默认配置生成全部四种输出
	assert.Len(t, result.OutputFiles, 4)
	for _, outputFile := range result.OutputFiles {
		_, err := os.Stat(outputFile)
		assert.NoError(t, err)
	}
}

func TestProcessFileInvalidJSON(t *testing.T) {
	pc := testController(t)
	defer pc.Shutdown()

	path := filepath.Join(pc.Config.InputFolder, "broken.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := pc.ProcessFile(path)
	assert.Error(t, err)
}

func TestProcessDirectory(t *testing.T) {
	pc := testController(t)
	defer pc.Shutdown()

	for _, name := range []string{"a.json", "b.json"} {
		path := filepath.Join(pc.Config.InputFolder, name)
		assert.NoError(t, os.WriteFile(path, []byte(sampleTranscript), 0644))
	}

	err := pc.ProcessDirectory()

	assert.NoError(t, err)
	assert.Equal(t, 2, pc.Stats.TotalFiles)
	assert.Equal(t, 2, pc.Stats.SuccessfulFiles)
	assert.Equal(t, 0, pc.Stats.FailedFiles)

	// 再次处理时已处理的文件被跳过
	err = pc.ProcessDirectory()
	assert.NoError(t, err)
	assert.Equal(t, 2, pc.Stats.TotalFiles)

	// 处理报告包含两个结果
	assert.NoError(t, pc.SaveReport())
	reportPath := filepath.Join(pc.Config.OutputFolder, "processing_report.json")
	data, err := os.ReadFile(reportPath)
	assert.NoError(t, err)

	var results []models.Result
	assert.NoError(t, json.Unmarshal(data, &results))
	assert.Len(t, results, 2)
}

func TestSaveReportEmpty(t *testing.T) {
	pc := testController(t)
	defer pc.Shutdown()

	// 没有结果时不生成报告文件
	assert.NoError(t, pc.SaveReport())
	_, err := os.Stat(filepath.Join(pc.Config.OutputFolder, "processing_report.json"))
	assert.True(t, os.IsNotExist(err))
}
