package transcript

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/models"
	"github.com/ccp-p/asr-transcript-cli/transcript-processor/pkg/utils"
)

// ProcessTranscript 将完整的转录结果转换为按分钟分组的句子序列
//
// 纯同步的内存转换，不做任何IO。每次调用持有独立的切分状态和说话人映射，
// 调用方各自传入输入并接收输出即可安全并发。
// 没有词条目的输入返回空结果，不视为错误。
func ProcessTranscript(result *TranscriptResult, isChinese bool) ([]models.MinuteSegment, error) {
	segmenter := NewSegmenter(isChinese)
	groups, err := segmenter.Process(result)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Process 规范化并切分一个完整的转录结果
func (s *Segmenter) Process(result *TranscriptResult) ([]models.MinuteSegment, error) {
	if result == nil || len(result.Results.Items) == 0 {
		return nil, nil
	}

	tokens, err := NormalizeItems(result.Results.Items)
	if err != nil {
		return nil, err
	}

	groups := s.Segment(tokens)
	utils.Debug("转录切分完成: %d 个令牌, %d 个分钟分组, %d 个说话人",
		len(tokens), len(groups), s.speakers.Count())
	return groups, nil
}

// LoadTranscriptFile 从文件加载转录结果JSON
func LoadTranscriptFile(path string) (*TranscriptResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取转录文件失败: %w", err)
	}

	var result TranscriptResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("解析转录JSON失败: %w", err)
	}

	return &result, nil
}
